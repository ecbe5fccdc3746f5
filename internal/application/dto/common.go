package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse corpo de sucesso simples.
type MessageResponse struct {
	Message string `json:"message"`
}

// FormDescriptor descreve os campos esperados por um formulário (respostas de GET
// nas rotas que antes renderizavam HTML).
type FormDescriptor struct {
	Action   string   `json:"action"`
	Method   string   `json:"method"`
	Required []string `json:"required"`
}
