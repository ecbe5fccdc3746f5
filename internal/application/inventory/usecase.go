package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/saep-sistemas/estoque-api/internal/application/dto"
	"github.com/saep-sistemas/estoque-api/internal/domain"
	"github.com/saep-sistemas/estoque-api/internal/domain/entity"
	"github.com/saep-sistemas/estoque-api/internal/domain/repository"
	"github.com/saep-sistemas/estoque-api/pkg/metrics"
)

// RegisterMovementUseCase registra movimentações de estoque de forma
// transacional (Entrada/Saída) com bloqueio de linha (SELECT FOR UPDATE)
// e Commit/Rollback. É a única operação com invariante entre duas tabelas:
// a quantidade do produto e o lançamento no livro gravam juntos ou nenhum grava.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// Register valida a entrada e executa a movimentação em uma única transação:
//  1. Bloqueia a linha do produto (FOR UPDATE); produto inexistente aborta sem escrever.
//  2. Entrada soma, Saída subtrai; Saída que deixaria o estoque negativo aborta
//     a transação inteira e informa a quantidade atual.
//  3. Grava a nova quantidade e o lançamento no livro (usuário da sessão, data de hoje).
//
// Após o commit, Alert indica se a nova quantidade ficou abaixo do estoque mínimo.
// Sem retry: qualquer falha aborta e reporta.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, userID int64, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	kind, ok := entity.ParseMovementKind(in.Kind)
	if !ok {
		metrics.MovementsRejected.WithLabelValues("tipo_invalido").Inc()
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.ProductID <= 0 || userID <= 0 {
		metrics.MovementsRejected.WithLabelValues("entrada_invalida").Inc()
		return nil, domain.ErrInvalidInput
	}

	var out dto.RegisterMovementResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty := product.Quantity
		switch kind {
		case entity.MovementKindIn:
			newQty += in.Quantity
		case entity.MovementKindOut:
			newQty -= in.Quantity
			if newQty < 0 {
				return &domain.InsufficientStockError{Current: product.Quantity}
			}
		}

		if err := productRepo.UpdateQuantity(ctx, product.ID, newQty); err != nil {
			return err
		}
		mov := &entity.Movement{
			UserID:    userID,
			ProductID: product.ID,
			Date:      time.Now(),
			Kind:      kind,
			Quantity:  in.Quantity,
		}
		if _, err := movRepo.Create(ctx, mov); err != nil {
			return err
		}

		out = dto.RegisterMovementResponse{
			ProductID:   product.ID,
			ProductName: product.Name,
			NewQuantity: newQty,
			MinStock:    product.MinStock,
			Alert:       newQty < product.MinStock,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			metrics.MovementsRejected.WithLabelValues("produto_inexistente").Inc()
		case errors.Is(err, domain.ErrInsufficientStock):
			metrics.MovementsRejected.WithLabelValues("estoque_insuficiente").Inc()
		}
		return nil, err
	}

	metrics.MovementsRegistered.WithLabelValues(kind).Inc()
	if out.Alert {
		metrics.LowStockAlerts.Inc()
	}
	return &out, nil
}
