package inventory

import (
	"context"
	"fmt"

	"github.com/saep-sistemas/estoque-api/internal/application/dto"
	"github.com/saep-sistemas/estoque-api/internal/domain/entity"
	"github.com/saep-sistemas/estoque-api/internal/domain/repository"
)

// DashboardUseCase monta o painel de gestão de estoque: catálogo atual
// (com a flag de estoque abaixo do mínimo) e histórico de movimentações
// com nomes de produto e usuário. Somente leitura, sem efeitos colaterais.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, movRepo: movRepo}
}

// GetOverview executa as duas consultas em paralelo:
//  1. Produtos ordenados por nome
//  2. Movimentações com join de produto e usuário, data decrescente
func (uc *DashboardUseCase) GetOverview(ctx context.Context) (*dto.StockOverviewResponse, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type movementsResult struct {
		list []*entity.MovementDetail
		err  error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.productRepo.List(ctx, "")
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.movRepo.ListWithDetails(ctx)
		movementsCh <- movementsResult{list, err}
	}()

	products := <-productsCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("painel: listar produtos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("painel: listar movimentações: %w", movements.err)
	}

	out := &dto.StockOverviewResponse{
		Products:  make([]dto.ProductResponse, 0, len(products.list)),
		Movements: make([]dto.MovementDetailResponse, 0, len(movements.list)),
	}
	for _, p := range products.list {
		out.Products = append(out.Products, dto.ProductResponse{
			ID:               p.ID,
			Name:             p.Name,
			Description:      p.Description,
			Quantity:         p.Quantity,
			MinStock:         p.MinStock,
			Voltage:          p.Voltage,
			Dimensions:       p.Dimensions,
			ScreenResolution: p.ScreenResolution,
			Storage:          p.Storage,
			Connectivity:     p.Connectivity,
			BelowMinimum:     p.BelowMinimum(),
			CreatedAt:        p.CreatedAt,
			UpdatedAt:        p.UpdatedAt,
		})
	}
	for _, m := range movements.list {
		out.Movements = append(out.Movements, dto.MovementDetailResponse{
			ID:          m.ID,
			Date:        m.Date,
			Kind:        m.Kind,
			Quantity:    m.Quantity,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			UserID:      m.UserID,
			UserName:    m.UserName,
		})
	}
	return out, nil
}
