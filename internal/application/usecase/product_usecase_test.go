package usecase_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saep-sistemas/estoque-api/internal/application/dto"
	"github.com/saep-sistemas/estoque-api/internal/application/usecase"
	"github.com/saep-sistemas/estoque-api/internal/domain"
	"github.com/saep-sistemas/estoque-api/internal/domain/entity"
)

// fakeProductRepo repositório de produtos em memória. withMovements simula a
// FK RESTRICT: produtos listados ali não podem ser removidos.
type fakeProductRepo struct {
	byID          map[int64]*entity.Product
	nextID        int64
	withMovements map[int64]bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		byID:          make(map[int64]*entity.Product),
		nextID:        1,
		withMovements: make(map[int64]bool),
	}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) (int64, error) {
	id := r.nextID
	r.nextID++
	cp := *p
	cp.ID = id
	r.byID[id] = &cp
	return id, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id int64, quantity int) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, nameFilter string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		if nameFilter != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(nameFilter)) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if r.withMovements[id] {
		return domain.ErrProductInUse
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func intPtr(v int) *int { return &v }

func validPayload(name string) dto.ProductPayload {
	return dto.ProductPayload{
		Name:     name,
		Quantity: intPtr(10),
		MinStock: intPtr(5),
	}
}

func TestProductCreate_CamposObrigatorios(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.ProductPayload{Name: "", Quantity: intPtr(1), MinStock: intPtr(5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.ProductPayload{Name: "Notebook", MinStock: intPtr(5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade ausente deve falhar")

	_, err = uc.Create(ctx, dto.ProductPayload{Name: "Notebook", Quantity: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estoque mínimo ausente deve falhar")
}

func TestProductCreate_QuantidadeZeroEhValida(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(context.Background(), dto.ProductPayload{
		Name:     "Monitor",
		Quantity: intPtr(0),
		MinStock: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity, "zero explícito é diferente de campo ausente")
	assert.True(t, out.BelowMinimum, "0 < 5 deve marcar abaixo do mínimo")
}

func TestProductUpdate_SobrescritaIntegral(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductPayload{
		Name:        "Roteador",
		Description: "dual band",
		Quantity:    intPtr(8),
		MinStock:    intPtr(3),
		Voltage:     "bivolt",
	})
	require.NoError(t, err)

	// Update sem voltage: o campo é sobrescrito com vazio, não preservado.
	out, err := uc.Update(ctx, created.ID, dto.ProductPayload{
		Name:     "Roteador AC1200",
		Quantity: intPtr(12),
		MinStock: intPtr(3),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Roteador AC1200", out.Name)
	assert.Equal(t, 12, out.Quantity)
	assert.Empty(t, out.Voltage, "update é sobrescrita da linha inteira")
	assert.Empty(t, out.Description)
}

func TestProductUpdate_IDInexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Update(context.Background(), 999, validPayload("Qualquer"))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductList_FiltroPorNome(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	for _, name := range []string{"Notebook Dell", "Monitor LG", "Notebook Lenovo"} {
		_, err := uc.Create(ctx, validPayload(name))
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, "notebook")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "notebook", out.Search)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total, "busca vazia lista todos")
	assert.Equal(t, "Monitor LG", all.Items[0].Name, "ordenado por nome")
}

func TestProductDelete_ComMovimentacoes_RetornaErro(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, validPayload("Impressora"))
	require.NoError(t, err)
	repo.withMovements[created.ID] = true

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProductInUse)

	// O produto continua no catálogo.
	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestProductResponse_AbaixoMinimo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(context.Background(), dto.ProductPayload{
		Name:     "Teclado",
		Quantity: intPtr(4),
		MinStock: intPtr(5),
	})
	require.NoError(t, err)
	assert.True(t, out.BelowMinimum)

	out2, err := uc.Create(context.Background(), dto.ProductPayload{
		Name:     "Mouse",
		Quantity: intPtr(5),
		MinStock: intPtr(5),
	})
	require.NoError(t, err)
	assert.False(t, out2.BelowMinimum, "igual ao mínimo não é abaixo do mínimo")
}
