package repository

import (
	"context"

	"github.com/saep-sistemas/estoque-api/internal/domain/entity"
)

// ProductRepository porta de persistência para produtos.
type ProductRepository interface {
	// Create persiste um novo produto e devolve o ID gerado.
	Create(ctx context.Context, product *entity.Product) (int64, error)
	// GetByID devolve o produto pelo ID, ou nil se não existir.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate devolve o produto bloqueando a linha (SELECT FOR UPDATE).
	// Só faz sentido dentro de uma transação; nil se não existir.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// Update sobrescreve a linha inteira. Retorna domain.ErrNotFound se o ID não existir.
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity grava apenas a nova quantidade (usado pela transação de movimentação).
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	// List devolve os produtos ordenados por nome; nameFilter vazio lista todos,
	// senão filtra por substring (case-insensitive).
	List(ctx context.Context, nameFilter string) ([]*entity.Product, error)
	// Delete remove o produto. Retorna domain.ErrProductInUse se existirem
	// movimentações referenciando o produto (FK RESTRICT).
	Delete(ctx context.Context, id int64) error
}
