package dto

import "time"

// RegisterRequest entrada do registro: username e password obrigatórios.
// O nome de exibição recebe o próprio username.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" form:"password" validate:"required,min=1"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UserResponse saída de um usuário (sem senha).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse saída com o token JWT da sessão.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
