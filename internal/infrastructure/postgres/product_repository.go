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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nome, descricao, quantidade, estoque_minimo,
		tensao, dimensoes, resolucao_tela, armazenamento, conectividade,
		created_at, updated_at`

// ProductRepo implementação da porta ProductRepository sobre PostgreSQL (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência para produtos. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto e devolve o ID gerado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO produtos (nome, descricao, quantidade, estoque_minimo,
			tensao, dimensoes, resolucao_tela, armazenamento, conectividade,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Quantity, product.MinStock,
		product.Voltage, product.Dimensions, product.ScreenResolution,
		product.Storage, product.Connectivity,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert produto: %w", err)
	}
	return id, nil
}

// GetByID devolve um produto pelo ID, ou nil se não existir.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate devolve o produto bloqueando a linha (SELECT FOR UPDATE).
// Usar somente dentro de uma transação.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, id, true)
}

func (r *ProductRepo) get(ctx context.Context, id int64, forUpdate bool) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM produtos WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Quantity, &p.MinStock,
		&p.Voltage, &p.Dimensions, &p.ScreenResolution, &p.Storage, &p.Connectivity,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update sobrescreve a linha inteira. Retorna domain.ErrNotFound se o ID não existir.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE produtos SET nome = $2, descricao = $3, quantidade = $4, estoque_minimo = $5,
			tensao = $6, dimensoes = $7, resolucao_tela = $8, armazenamento = $9,
			conectividade = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Quantity, product.MinStock,
		product.Voltage, product.Dimensions, product.ScreenResolution,
		product.Storage, product.Connectivity, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity grava apenas a nova quantidade (transação de movimentação).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE produtos SET quantidade = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devolve os produtos ordenados por nome; nameFilter vazio lista todos,
// senão filtra por substring case-insensitive (ILIKE).
func (r *ProductRepo) List(ctx context.Context, nameFilter string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM produtos`
	args := []any{}
	if nameFilter != "" {
		query += ` WHERE nome ILIKE '%' || $1 || '%'`
		args = append(args, nameFilter)
	}
	query += ` ORDER BY nome ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.MinStock,
			&p.Voltage, &p.Dimensions, &p.ScreenResolution, &p.Storage, &p.Connectivity,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove um produto pelo ID. A FK de movimentos restringe a remoção
// de produtos com histórico; nesse caso devolve domain.ErrProductInUse.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductInUse
		}
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
