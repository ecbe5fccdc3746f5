package repository

import (
	"context"

	"github.com/saep-sistemas/estoque-api/internal/domain/entity"
)

// UserRepository porta de persistência para usuários.
type UserRepository interface {
	// Create persiste um novo usuário e devolve o ID gerado.
	// Retorna domain.ErrLoginAlreadyExists em violação de unicidade do login.
	Create(ctx context.Context, user *entity.User) (int64, error)
	// GetByLogin devolve o usuário pelo login, ou nil se não existir.
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	// GetByID devolve o usuário pelo ID, ou nil se não existir.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
