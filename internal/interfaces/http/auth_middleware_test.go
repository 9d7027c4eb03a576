package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Barra-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Barra-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "barra-api-test"
	testExpMin    = 60
)

// fakeUserRepo fake en memoria con los socios de prueba.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.MemberNo] = u; return nil }
func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByMemberNo(memberNo string) (*entity.User, error) {
	return f.users[memberNo], nil
}
func (f *fakeUserRepo) Update(*entity.User) error                     { return nil }
func (f *fakeUserRepo) UpdatePassword(int64, string) error            { return nil }
func (f *fakeUserRepo) AdjustBalance(int64, decimal.Decimal) error    { return nil }
func (f *fakeUserRepo) List(string, int, int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Count(string) (int, error)                     { return 0, nil }

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// buildTestApp construye una app Fiber mínima: AuthMiddleware + /whoami que
// devuelve la identidad resuelta (o anónimo).
func buildTestApp(repo *fakeUserRepo) (*fiber.App, *auth.AuthUseCase) {
	authUC := auth.NewAuthUseCase(repo, nil, auth.JWTConfig{
		Secret:             testJWTSecret,
		ExpMinutes:         testExpMin,
		RememberExpMinutes: testExpMin * 10,
		Issuer:             testIssuer,
	})
	app := fiber.New()
	app.Use(apphttp.AuthMiddleware(testJWTSecret, authUC))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		user := apphttp.GetCurrentUser(c)
		if user == nil {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"anonymous": false, "member_no": user.MemberNo, "permission": user.Permission})
	})
	return app, authUC
}

func tokenFor(t *testing.T, memberNo, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, memberNo, role, false, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func whoami(t *testing.T, app *fiber.App, configure func(*http.Request)) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if configure != nil {
		configure(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — resolución de identidad
// ──────────────────────────────────────────────────────────────────────────────

// La cookie de sesión resuelve al socio completo, rol incluido desde la DB.
func TestAuthMiddleware_CookieResuelveSocio(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"42": {ID: 7, MemberNo: "42", Name: "Socio", Permission: entity.PermissionAdmin},
	}}
	app, _ := buildTestApp(repo)

	body := whoami(t, app, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tokenFor(t, "42", "default")})
	})

	assert.Equal(t, false, body["anonymous"])
	assert.Equal(t, "42", body["member_no"])
	assert.Equal(t, entity.PermissionAdmin, body["permission"],
		"el rol sale de la DB, no del claim del token")
}

// Un Bearer token funciona como alternativa a la cookie (clientes de API).
func TestAuthMiddleware_BearerComoAlternativa(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"42": {ID: 7, MemberNo: "42", Permission: entity.PermissionDefault},
	}}
	app, _ := buildTestApp(repo)

	body := whoami(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, "42", "default"))
	})
	assert.Equal(t, false, body["anonymous"])
}

// Sin token, token inválido o socio borrado → la petición sigue como anónima.
func TestAuthMiddleware_CasosAnonimos(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	app, _ := buildTestApp(repo)

	// Sin token
	body := whoami(t, app, nil)
	assert.Equal(t, true, body["anonymous"])

	// Token malformado
	body = whoami(t, app, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: "token.invalido.aqui"})
	})
	assert.Equal(t, true, body["anonymous"])

	// Token válido pero el socio ya no existe
	body = whoami(t, app, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tokenFor(t, "999", "admin")})
	})
	assert.Equal(t, true, body["anonymous"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Login — cookie de sesión y regla de password sin fijar
// ──────────────────────────────────────────────────────────────────────────────

func buildLoginApp(repo *fakeUserRepo) *fiber.App {
	authUC := auth.NewAuthUseCase(repo, nil, auth.JWTConfig{
		Secret:             testJWTSecret,
		ExpMinutes:         testExpMin,
		RememberExpMinutes: testExpMin * 10,
		Issuer:             testIssuer,
	})
	userUC := usecase.NewUserUseCase(repo)
	app := fiber.New()
	handler := apphttp.NewAuthHandler(authUC, userUC)
	app.Post("/login", handler.Login)
	app.Get("/remember", handler.Remember)
	return app
}

func doLogin(t *testing.T, app *fiber.App, payload map[string]any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLogin_CredencialesValidasFijanCookie(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"42": {ID: 7, MemberNo: "42", Name: "Socio", Password: hashOf(t, "secreta"), Permission: entity.PermissionDefault},
	}}
	app := buildLoginApp(repo)

	resp := doLogin(t, app, map[string]any{"member_no": "42", "password": "secreta"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "el login debe fijar la cookie de sesión")
	assert.True(t, sessionCookie.HttpOnly)
	assert.NotEmpty(t, sessionCookie.Value)

	// El token de la cookie debe portar el member_no
	memberNo, _, _, err := pkgjwt.Parse(testJWTSecret, sessionCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "42", memberNo)
}

// Regla heredada: password sin fijar en DB permite entrar con password vacío.
func TestLogin_PasswordSinFijarPermiteVacio(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"42": {ID: 7, MemberNo: "42", Name: "Socio", Password: "", Permission: entity.PermissionDefault},
	}}
	app := buildLoginApp(repo)

	resp := doLogin(t, app, map[string]any{"member_no": "42", "password": ""})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Pero cualquier password no vacío contra credencial sin fijar falla
	resp2 := doLogin(t, app, map[string]any{"member_no": "42", "password": "algo"})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"42": {ID: 7, MemberNo: "42", Password: hashOf(t, "secreta"), Permission: entity.PermissionDefault},
	}}
	app := buildLoginApp(repo)

	resp := doLogin(t, app, map[string]any{"member_no": "42", "password": "incorrecta"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := doLogin(t, app, map[string]any{"member_no": "desconocido", "password": "x"})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode,
		"socio inexistente y password incorrecto deben ser indistinguibles")
}

// ──────────────────────────────────────────────────────────────────────────────
// Remember — renovación silenciosa de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestRemember_RenuevaSoloTokensRecuerdame(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"42": {ID: 7, MemberNo: "42", Name: "Socio", Permission: entity.PermissionDefault},
	}}
	app := buildLoginApp(repo)

	doRemember := func(cookie string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, "/remember", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: cookie})
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	// Token con remember_me → 200 y cookie fresca
	remembered, err := pkgjwt.Generate(testJWTSecret, "42", "default", true, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRemember(remembered)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var renewed *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			renewed = c
		}
	}
	require.NotNil(t, renewed)
	assert.NotEmpty(t, renewed.Value)

	// Token de sesión corta (sin remember_me) → 401
	short := tokenFor(t, "42", "default")
	resp2 := doRemember(short)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode,
		"solo se renueva lo que el socio pidió recordar")

	// Sin cookie → 401
	resp3 := doRemember("")
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp3.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg — remember_me
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_RememberMe(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "42", "default", true, testIssuer, testExpMin)
	require.NoError(t, err)

	memberNo, role, rememberMe, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "42", memberNo)
	assert.Equal(t, "default", role)
	assert.True(t, rememberMe)

	// Firma con otro secreto → rechazo
	_, _, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

// Verificación de la política de permisos end-to-end con el envelope HTTP.
func TestGuard_EnvelopeEnRutaProtegida(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"1":  {ID: 1, MemberNo: "1", Permission: entity.PermissionAdmin},
		"42": {ID: 7, MemberNo: "42", Permission: entity.PermissionDefault},
	}}
	app, _ := buildTestApp(repo)
	app.Get("/solo-admin", func(c *fiber.Ctx) error {
		res := auth.WithAuth(nil, apphttp.GetCurrentUser(c), auth.Requirement{AdminOnly: true},
			func(caller *entity.User) (string, error) {
				return "hola " + caller.MemberNo, nil
			})
		if !res.Success {
			status := http.StatusInternalServerError
			switch res.Error.Code {
			case auth.CodeUnauthenticated:
				status = http.StatusUnauthorized
			case auth.CodeUnauthorized:
				status = http.StatusForbidden
			}
			return c.Status(status).JSON(res)
		}
		return c.JSON(res)
	})

	// Anónimo → 401
	req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Socio normal → 403
	req = httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tokenFor(t, "42", "default")})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin → 200
	req = httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tokenFor(t, "1", "admin")})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
}
