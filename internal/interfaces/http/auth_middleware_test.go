package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/saep-sistemas/estoque-api/internal/interfaces/http"
	pkgjwt "github.com/saep-sistemas/estoque-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(7)
	testUserName  = "joao"
	testIssuer    = "estoque-api-test"
	testExpMin    = 60
)

// buildProtectedApp monta uma aplicação Fiber mínima com o AuthMiddleware e
// um handler que devolve os claims carregados em locals.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"user_name": apphttp.GetUserName(c),
		})
	})
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Header Authorization com Bearer válido → 200 e claims em locals.
func TestAuthMiddleware_BearerValido(t *testing.T) {
	app := buildProtectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(testUserID), body["user_id"])
	assert.Equal(t, testUserName, body["user_name"])
}

// Caso 2: Cookie de sessão no lugar do header → 200 igualmente.
func TestAuthMiddleware_CookieDeSessao(t *testing.T) {
	app := buildProtectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookieName, Value: validToken(t)})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"cookie de sessão deve autenticar sem header Authorization")
}

// Caso 3: Sem token algum → 401 MISSING_TOKEN.
func TestAuthMiddleware_SemToken_Retorna401(t *testing.T) {
	app := buildProtectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Token malformado → 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildProtectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer token.invalido.aqui")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token assinado com outro secret → 401.
func TestAuthMiddleware_SecretErrado_Retorna401(t *testing.T) {
	app := buildProtectedApp()

	tok, err := pkgjwt.Generate("outro-secret", testUserID, testUserName, testIssuer, testExpMin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
