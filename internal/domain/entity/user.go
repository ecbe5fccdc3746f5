package entity

import "time"

// User representa um usuário do sistema. Criado no registro; nunca é
// atualizado nem removido (não existe rota para isso).
type User struct {
	ID           int64
	Name         string
	Login        string // único, não nulo
	PasswordHash string // hash bcrypt, nunca em texto plano após persistir
	CreatedAt    time.Time
}
