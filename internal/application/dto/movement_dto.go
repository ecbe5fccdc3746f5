package dto

import "time"

// RegisterMovementRequest entrada da movimentação de estoque. Os nomes dos campos
// seguem o formulário original (id_produto, tipo_operacao, quantidade).
type RegisterMovementRequest struct {
	ProductID int64  `json:"id_produto" form:"id_produto" validate:"required,gt=0"`
	Kind      string `json:"tipo_operacao" form:"tipo_operacao" validate:"required"`
	Quantity  int    `json:"quantidade" form:"quantidade" validate:"required,gt=0"`
}

// RegisterMovementResponse saída da movimentação: mensagem de sucesso ou alerta
// de estoque abaixo do mínimo, mais o estado resultante do produto.
type RegisterMovementResponse struct {
	Message     string `json:"message"`
	Alert       bool   `json:"alerta"`
	ProductID   int64  `json:"id_produto"`
	ProductName string `json:"produto"`
	NewQuantity int    `json:"quantidade"`
	MinStock    int    `json:"estoque_minimo"`
}

// MovementDetailResponse linha do histórico no painel de gestão de estoque.
type MovementDetailResponse struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"data"`
	Kind        string    `json:"tipo_operacao"`
	Quantity    int       `json:"quantidade"`
	ProductID   int64     `json:"id_produto"`
	ProductName string    `json:"produto"`
	UserID      int64     `json:"id_usuario"`
	UserName    string    `json:"usuario"`
}

// StockOverviewResponse saída do painel /gestao_estoque: produtos atuais
// e histórico completo de movimentações.
type StockOverviewResponse struct {
	Products  []ProductResponse        `json:"produtos"`
	Movements []MovementDetailResponse `json:"movimentos"`
}
