package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	apphttp "github.com/mwsdigital/console-api/internal/interfaces/http"
	pkgjwt "github.com/mwsdigital/console-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "console-api-test"
	testExpMin    = 60
)

// fakeUserRepo repository utenti in memoria per i test del middleware.
type fakeUserRepo struct {
	users map[string]entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error { f.users[u.ID] = *u; return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) List(_ context.Context) ([]entity.User, error) { return nil, nil }
func (f *fakeUserRepo) ListByRole(_ context.Context, _ entity.Role) ([]entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error { f.users[u.ID] = *u; return nil }
func (f *fakeUserRepo) SetBlocked(_ context.Context, id string, blocked bool) error {
	u := f.users[id]
	u.IsBlocked = blocked
	f.users[id] = u
	return nil
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{
		"admin-1": {ID: "admin-1", Name: "Ada", Email: "ada@example.com", Role: entity.RoleAdmin},
		"aff-1":   {ID: "aff-1", Name: "Aldo", Email: "aldo@example.com", Role: entity.RoleAffiliate},
		"blk-1":   {ID: "blk-1", Name: "Bea", Email: "bea@example.com", Role: entity.RoleAffiliate, IsBlocked: true},
	}}
}

// buildTestApp monta una rotta protetta con AuthMiddleware + RequireRoles
// e un handler che risponde 200 con il ruolo caricato.
func buildTestApp(repo *fakeUserRepo, allowed ...entity.Role) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		apphttp.RequireRoles(allowed...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": string(apphttp.CurrentUser(c).Role)})
		},
	)
	return app
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err, "il token di test deve generarsi senza errori")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// L'admin accede a una rotta riservata ad admin.
func TestRequireRoles_AdminAccedeRottaAdmin(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(), entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, "admin-1", "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

// L'affiliato viene respinto su una rotta riservata allo staff.
func TestRequireRoles_AffiliatoBloccatoSuRottaStaff(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(), entity.RoleAdmin, entity.RoleManager)
	resp := doRequest(t, app, tokenFor(t, "aff-1", "affiliate"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Senza header Authorization la risposta è 401.
func TestAuthMiddleware_SenzaHeader(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(), entity.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token malformato è respinto con 401.
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(), entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.qui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un account bloccato è respinto anche con token valido.
func TestAuthMiddleware_AccountBloccato(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(), entity.RoleAffiliate)
	resp := doRequest(t, app, tokenFor(t, "blk-1", "affiliate"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "BLOCKED")
}

// Un token valido di un utente inesistente è respinto con 401.
func TestAuthMiddleware_UtenteInesistente(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(), entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, "ghost-1", "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// CurrentUser espone l'utente caricato dal middleware.
func TestAuthMiddleware_CaricaUtente(t *testing.T) {
	repo := newFakeUserRepo()
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, repo), func(c *fiber.Ctx) error {
		u := apphttp.CurrentUser(c)
		return c.JSON(fiber.Map{"id": u.ID, "name": u.Name, "role": string(u.Role)})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "aff-1", "affiliate"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "aff-1", body["id"])
	assert.Equal(t, "Aldo", body["name"])
	assert.Equal(t, "affiliate", body["role"])
}

// Integrità del generate/parse JWT con ruolo nei claims.
func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "admin-1", "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", userID)
	assert.Equal(t, "admin", role)
}

func TestJWT_TokenScaduto(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "admin-1", "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "un token scaduto deve essere rifiutato")
}

func TestJWT_SecretErrato(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "admin-1", "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("un-altro-secret-del-tutto-diverso", tok)
	assert.Error(t, err, "un secret errato deve invalidare il token")
}
