package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saep-sistemas/estoque-api/internal/application/auth"
	"github.com/saep-sistemas/estoque-api/internal/application/inventory"
	"github.com/saep-sistemas/estoque-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Dashboard        *inventory.DashboardUseCase
	JWTSecret        string
	JWTExpMinutes    int
}

// Router registra as rotas da API. Os caminhos preservam a superfície HTTP
// original (cadastro_produto, gestao_estoque, registrar_movimento).
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTExpMinutes)
	app.Get("/register", authHandler.RegisterForm)
	app.Post("/register", authHandler.Register)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Rotas protegidas (Bearer token ou cookie de sessão)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/", authHandler.Principal)
	protected.Get("/principal", authHandler.Principal)

	// Catálogo de produtos (protegido)
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/cadastro_produto", productHandler.List)
	protected.Post("/produto/add", productHandler.Create)
	protected.Get("/produto/edit/:id", productHandler.GetByID)
	protected.Post("/produto/edit/:id", productHandler.Update)
	protected.Post("/produto/delete/:id", productHandler.Delete)

	// Gestão de estoque (protegido)
	stockHandler := NewStockHandler(deps.RegisterMovement, deps.Dashboard)
	protected.Get("/gestao_estoque", stockHandler.Overview)
	protected.Post("/registrar_movimento", stockHandler.RegisterMovement)
}
