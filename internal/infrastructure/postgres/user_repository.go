package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/saep-sistemas/estoque-api/internal/domain"
	"github.com/saep-sistemas/estoque-api/internal/domain/entity"
	"github.com/saep-sistemas/estoque-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação da porta UserRepository sobre PostgreSQL (usável com pool ou tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de persistência para usuários. Passar pool ou tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste um novo usuário e devolve o ID gerado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO usuarios (nome, login, senha_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		user.Name, user.Login, user.PasswordHash, user.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrLoginAlreadyExists
		}
		return 0, fmt.Errorf("insert usuario: %w", err)
	}
	return id, nil
}

// GetByLogin devolve o usuário pelo login, ou nil se não existir.
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*entity.User, error) {
	query := `
		SELECT id, nome, login, senha_hash, created_at
		FROM usuarios WHERE login = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, login).Scan(
		&u.ID, &u.Name, &u.Login, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by login: %w", err)
	}
	return &u, nil
}

// GetByID devolve o usuário pelo ID, ou nil se não existir.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, nome, login, senha_hash, created_at
		FROM usuarios WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Login, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by id: %w", err)
	}
	return &u, nil
}
