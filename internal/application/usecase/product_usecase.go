package usecase

import (
	"context"
	"time"

	"github.com/saep-sistemas/estoque-api/internal/application/dto"
	"github.com/saep-sistemas/estoque-api/internal/domain"
	"github.com/saep-sistemas/estoque-api/internal/domain/entity"
	"github.com/saep-sistemas/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD do catálogo de produtos.
// A quantidade também pode ser alterada pela transação de movimentação;
// o update bruto aqui sobrescreve a linha inteira, como no cadastro original.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cria um novo produto. Nome, quantidade e estoque mínimo são obrigatórios.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductPayload) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity == nil || in.MinStock == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:             in.Name,
		Description:      in.Description,
		Quantity:         *in.Quantity,
		MinStock:         *in.MinStock,
		Voltage:          in.Voltage,
		Dimensions:       in.Dimensions,
		ScreenResolution: in.ScreenResolution,
		Storage:          in.Storage,
		Connectivity:     in.Connectivity,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	id, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return toProductResponse(product), nil
}

// GetByID devolve um produto pelo ID (para o formulário de edição).
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update sobrescreve a linha inteira do produto (mesma validação do cadastro).
// Devolve nil, nil se o ID não existir.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductPayload) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity == nil || in.MinStock == nil {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	product := &entity.Product{
		ID:               id,
		Name:             in.Name,
		Description:      in.Description,
		Quantity:         *in.Quantity,
		MinStock:         *in.MinStock,
		Voltage:          in.Voltage,
		Dimensions:       in.Dimensions,
		ScreenResolution: in.ScreenResolution,
		Storage:          in.Storage,
		Connectivity:     in.Connectivity,
		CreatedAt:        current.CreatedAt,
		UpdatedAt:        time.Now(),
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista o catálogo ordenado por nome; busca vazia lista todos.
func (uc *ProductUseCase) List(ctx context.Context, search string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items:  items,
		Search: search,
		Total:  len(items),
	}, nil
}

// Delete remove um produto. Produtos com movimentações registradas não podem
// ser removidos (a FK restringe); nesse caso devolve ErrProductInUse.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
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
	}
}
