package postgres

import (
	"context"
	"fmt"

	"github.com/saep-sistemas/estoque-api/internal/domain/entity"
	"github.com/saep-sistemas/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação sobre PostgreSQL (usável com pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste um movimento e devolve o ID gerado.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) (int64, error) {
	query := `
		INSERT INTO movimentos (usuario_id, produto_id, data, tipo_operacao, quantidade, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		movement.UserID, movement.ProductID, movement.Date, movement.Kind, movement.Quantity,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert movimento: %w", err)
	}
	return id, nil
}

// ListWithDetails devolve o histórico com nomes de produto e usuário,
// ordenado por data decrescente (desempate pelo id).
func (r *MovementRepo) ListWithDetails(ctx context.Context) ([]*entity.MovementDetail, error) {
	query := `
		SELECT m.id, m.usuario_id, m.produto_id, m.data, m.tipo_operacao, m.quantidade, m.created_at,
			p.nome AS nome_produto, u.nome AS nome_usuario
		FROM movimentos m
		JOIN produtos p ON m.produto_id = p.id
		JOIN usuarios u ON m.usuario_id = u.id
		ORDER BY m.data DESC, m.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementDetail
	for rows.Next() {
		var m entity.MovementDetail
		if err := rows.Scan(&m.ID, &m.UserID, &m.ProductID, &m.Date, &m.Kind, &m.Quantity,
			&m.CreatedAt, &m.ProductName, &m.UserName); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
