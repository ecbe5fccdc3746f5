package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrLoginAlreadyExists = errors.New("esse nome de usuário já existe")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")
	ErrProductInUse       = errors.New("produto possui movimentações registradas")
	ErrInsufficientStock  = errors.New("estoque não pode ficar negativo")
)

// InsufficientStockError carrega a quantidade atual para a mensagem ao usuário
// ("Atual: N"). errors.Is(err, ErrInsufficientStock) continua funcionando.
type InsufficientStockError struct {
	Current int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque não pode ficar negativo (Atual: %d)", e.Current)
}

// Is permite comparar com o sentinel ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
