package dto

import "time"

// ProductPayload entrada de criação/edição de produto. Os campos obrigatórios
// (nome, quantidade, estoque_minimo) usam ponteiro para distinguir "ausente" de zero.
// A edição é sobrescrita integral da linha, então o payload é o mesmo do cadastro.
type ProductPayload struct {
	Name        string `json:"nome" form:"nome" validate:"required,min=1,max=200"`
	Description string `json:"descricao" form:"descricao"`
	Quantity    *int   `json:"quantidade" form:"quantidade" validate:"required,min=0"`
	MinStock    *int   `json:"estoque_minimo" form:"estoque_minimo" validate:"required,min=0"`

	Voltage          string `json:"tensao" form:"tensao"`
	Dimensions       string `json:"dimensoes" form:"dimensoes"`
	ScreenResolution string `json:"resolucao_tela" form:"resolucao_tela"`
	Storage          string `json:"armazenamento" form:"armazenamento"`
	Connectivity     string `json:"conectividade" form:"conectividade"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Quantity    int    `json:"quantidade"`
	MinStock    int    `json:"estoque_minimo"`

	Voltage          string `json:"tensao,omitempty"`
	Dimensions       string `json:"dimensoes,omitempty"`
	ScreenResolution string `json:"resolucao_tela,omitempty"`
	Storage          string `json:"armazenamento,omitempty"`
	Connectivity     string `json:"conectividade,omitempty"`

	BelowMinimum bool      `json:"abaixo_minimo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse saída da listagem do catálogo.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Search string            `json:"busca,omitempty"`
	Total  int               `json:"total"`
}
