package repository

import (
	"context"

	"github.com/saep-sistemas/estoque-api/internal/domain/entity"
)

// MovementRepository porta de persistência para o livro de movimentações.
// Somente inserção e leitura: movimentos são imutáveis e nunca removidos.
type MovementRepository interface {
	// Create persiste um novo movimento e devolve o ID gerado.
	Create(ctx context.Context, movement *entity.Movement) (int64, error)
	// ListWithDetails devolve o histórico com nomes de produto e usuário,
	// ordenado por data decrescente.
	ListWithDetails(ctx context.Context) ([]*entity.MovementDetail, error)
}
