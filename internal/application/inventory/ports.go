package inventory

import (
	"context"

	"github.com/saep-sistemas/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de DB, passando
// repositórios atados a essa tx. Garante atomicidade entre a atualização da
// quantidade do produto e a inserção no livro de movimentações.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error) error
}
