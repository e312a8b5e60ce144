package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/catalogo-admin-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-admin-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testAccessSecret  = "access-secret-para-tests"
	testRefreshSecret = "refresh-secret-para-tests"
	testUserID        = "00000000-0000-0000-0000-000000000001"
)

func testTokens() *token.Service {
	return token.NewService(token.Config{
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		Issuer:        "catalogo-admin-test",
	})
}

// buildProtectedApp construye una aplicación Fiber mínima con AuthMiddleware y
// un handler dummy que devuelve el user_id extraído si el middleware pasa.
func buildProtectedApp(tokens *token.Service) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(tokens),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// doProtected lanza una petición GET /protected con el header indicado.
func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Access token válido → 200 y user_id en locals.
func TestAuthMiddleware_AccessTokenValido_Pasa(t *testing.T) {
	tokens := testTokens()
	app := buildProtectedApp(tokens)

	tok, err := tokens.IssueAccess(testUserID)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["user_id"], "el middleware debe dejar el user_id verificado en locals")
}

// Un refresh token en lugar del access token → 401 (firmado con el otro secret).
func TestAuthMiddleware_RefreshTokenComoAccess_Retorna401(t *testing.T) {
	tokens := testTokens()
	app := buildProtectedApp(tokens)

	refresh, err := tokens.IssueRefresh(testUserID)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+refresh)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un refresh token no debe validar contra el access secret")
}

// Sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildProtectedApp(testTokens())

	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Esquema distinto de Bearer → 401.
func TestAuthMiddleware_EsquemaInvalido_Retorna401(t *testing.T) {
	tokens := testTokens()
	app := buildProtectedApp(tokens)

	tok, err := tokens.IssueAccess(testUserID)
	require.NoError(t, err)

	resp := doProtected(t, app, "Basic "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token malformado → 401.
func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildProtectedApp(testTokens())

	resp := doProtected(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Access token expirado → 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tokens := testTokens()
	app := buildProtectedApp(tokens)

	expirados := token.NewService(token.Config{
		AccessSecret:     testAccessSecret,
		RefreshSecret:    testRefreshSecret,
		AccessExpMinutes: -1, // ya expirado al emitirse
	})
	tok, err := expirados.IssueAccess(testUserID)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
