package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/saep-sistemas/estoque-api/internal/application/dto"
	"github.com/saep-sistemas/estoque-api/internal/application/inventory"
	"github.com/saep-sistemas/estoque-api/internal/domain"
)

// StockHandler trata o painel de gestão de estoque e o registro de movimentações (protegido).
type StockHandler struct {
	registerUC  *inventory.RegisterMovementUseCase
	dashboardUC *inventory.DashboardUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(registerUC *inventory.RegisterMovementUseCase, dashboardUC *inventory.DashboardUseCase) *StockHandler {
	return &StockHandler{registerUC: registerUC, dashboardUC: dashboardUC}
}

// Overview godoc
// @Summary      Painel de gestão de estoque
// @Description  Catálogo atual (com flag de estoque abaixo do mínimo) e histórico
// @Description  de movimentações por data decrescente. Somente leitura.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockOverviewResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /gestao_estoque [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetOverview(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao montar o painel"})
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimentação de estoque
// @Description  Entrada soma e Saída subtrai da quantidade do produto, em transação
// @Description  única com o lançamento no livro. Saída que deixaria o estoque
// @Description  negativo é rejeitada citando a quantidade atual.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "id_produto, tipo_operacao (Entrada/Saída), quantidade > 0"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /registrar_movimento [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sessão inválida"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Erro: Quantidade inválida."})
	}
	out, err := h.registerUC.Register(c.Context(), userID, in)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: fmt.Sprintf("Erro: Estoque não pode ficar negativo. (Atual: %d)", insufficient.Current),
			})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Erro: Produto não encontrado."})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Erro: Quantidade inválida."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro inesperado no banco de dados"})
	}

	if out.Alert {
		out.Message = fmt.Sprintf("ALERTA: Estoque do produto '%s' está abaixo do mínimo (%d)!", out.ProductName, out.MinStock)
	} else {
		out.Message = "Movimentação registrada com sucesso!"
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
