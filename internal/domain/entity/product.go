package entity

import "time"

// DefaultMinStock estoque mínimo aplicado quando o cadastro não informa outro valor.
const DefaultMinStock = 5

// Product representa um produto do catálogo. Quantity é mantido pela
// transação de movimentação; o caminho de update bruto sobrescreve a linha inteira.
type Product struct {
	ID          int64
	Name        string
	Description string
	Quantity    int
	MinStock    int // estoque mínimo desejado; abaixo dele a movimentação emite alerta

	// Atributos descritivos livres (texto opcional).
	Voltage          string
	Dimensions       string
	ScreenResolution string
	Storage          string
	Connectivity     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelowMinimum indica se a quantidade atual está abaixo do estoque mínimo.
func (p *Product) BelowMinimum() bool {
	return p.Quantity < p.MinStock
}
