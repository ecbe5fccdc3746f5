package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/saep-sistemas/estoque-api/internal/application/auth"
	"github.com/saep-sistemas/estoque-api/internal/application/dto"
	"github.com/saep-sistemas/estoque-api/internal/domain"
)

// AuthHandler trata registro, login, logout e a página principal.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	cookieTTL time.Duration
}

// NewAuthHandler constrói o handler de auth. expMinutes define a validade do cookie de sessão.
func NewAuthHandler(uc *auth.AuthUseCase, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, cookieTTL: time.Duration(expMinutes) * time.Minute}
}

// RegisterForm godoc
// @Summary      Descritor do formulário de registro
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.FormDescriptor
// @Router       /register [get]
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return c.JSON(dto.FormDescriptor{
		Action:   "/register",
		Method:   fiber.MethodPost,
		Required: []string{"username", "password"},
	})
}

// Register godoc
// @Summary      Registrar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Usuário e Senha são obrigatórios."})
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrLoginAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOGIN_EXISTS", Message: "Erro: Esse nome de usuário já existe."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao registrar usuário"})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginForm godoc
// @Summary      Descritor do formulário de login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.FormDescriptor
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.JSON(dto.FormDescriptor{
		Action:   "/login",
		Method:   fiber.MethodPost,
		Required: []string{"username", "password"},
	})
}

// Login godoc
// @Summary      Iniciar sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Usuário e Senha são obrigatórios."})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Usuário ou senha inválidos."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao iniciar sessão"})
	}
	// Cookie de sessão para clientes de formulário; o token também vai no corpo.
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    out.Token,
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Encerrar sessão
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.MessageResponse{Message: "sessão encerrada"})
}

// Principal godoc
// @Summary      Página principal autenticada
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /principal [get]
func (h *AuthHandler) Principal(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":      "Bem-vindo",
		"user_id":      GetUserID(c),
		"nome_usuario": GetUserName(c),
	})
}
