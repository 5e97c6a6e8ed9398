package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vendas-api/internal/application/auth"
	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/importer"
	"github.com/jhoicas/Vendas-api/internal/application/ports"
	"github.com/jhoicas/Vendas-api/internal/application/report"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	"github.com/jhoicas/Vendas-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Vendas-api/internal/interfaces/http"
	"github.com/jhoicas/Vendas-api/pkg/jwt"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "vendas-api-test"
	testExpMin    = 60
	testEmail     = "vera@padaria.com"
	testPassword  = "segredo123"
)

// buildTestApp construye la aplicación completa sobre el almacenamiento en memoria.
func buildTestApp(t *testing.T, ping func(ctx context.Context) error) (*fiber.App, repository.Store) {
	t.Helper()
	store := memory.NewStore()
	lookup := usecase.NewLookupUseCase(store.PaymentMethods, store.Statuses)
	_, err := lookup.Seed(context.Background())
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName: "vendas-api-test",
		AuthUC: auth.NewAuthUseCase(store.Users, store.Establishments, nil, time.Second, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		EstablishmentUC: usecase.NewEstablishmentUseCase(store.Establishments, nil, time.Second),
		UserUC:          usecase.NewUserUseCase(store.Users),
		ProductUC:       usecase.NewProductUseCase(store.Products),
		OrderUC:         usecase.NewOrderUseCase(store, ports.NoopPublisher{}, time.UTC, logger.Nop()),
		LookupUC:        lookup,
		Importer:        importer.New(store, nil, ports.NoopPublisher{}, importer.Config{Dir: t.TempDir(), Location: time.UTC}, logger.Nop()),
		Reports:         report.NewService(store, time.UTC),
		Location:        time.UTC,
		Ping:            ping,
		Log:             logger.Nop(),
	})
	return app, store
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

var testAddress = dto.AddressDTO{
	ZipCode: "20000000", Street: "Rua A", District: "Centro", Number: 1, City: "Rio", State: "RJ",
}

var testPhone = dto.PhoneDTO{AreaCode: "21", Number: "987654321"}

func signUpBody() dto.SignUpRequest {
	return dto.SignUpRequest{
		Name: "Vera", Email: testEmail, Password: testPassword,
		Phone: testPhone, Address: testAddress, Establishment: "Padaria Central",
	}
}

// registerCollaborator crea el establecimiento y un colaborador; devuelve el token.
func registerCollaborator(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/establishments/signup", "", dto.EstablishmentSignUpRequest{
		Name: "Padaria Central", Phone: testPhone, Address: testAddress,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/users/signup", "", signUpBody())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.AuthResponse](t, resp)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestSignUp_CreaColaboradorYDevuelveToken(t *testing.T) {
	app, store := buildTestApp(t, nil)

	registerCollaborator(t, app)

	users, err := store.Users.List(context.Background(), repository.UserFilter{})
	require.NoError(t, err)
	require.Len(t, users, 1, "debe existir exactamente un usuario")
	assert.Equal(t, testEmail, users[0].Email)
	assert.False(t, users[0].Customer)
}

func TestSignUp_DuplicadoDevuelve400(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	registerCollaborator(t, app)

	resp := doJSON(t, app, http.MethodPost, "/users/signup", "", signUpBody())

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.True(t, out.Error)
	assert.Equal(t, "Usuário já está cadastrado! Tente realizar o login", out.Message)
}

func TestSignUp_EstablecimientoInexistente(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/users/signup", "", signUpBody())

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, auth.ErrUnknownEstablishment.Error(), out.Message)
}

func TestSignUp_ValidacionDevuelveErroresPorCampo(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/users/signup", "", map[string]any{"email": "no-es-email"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.MsgInvalidPayload, out.Message)
	assert.Contains(t, out.Errors, "email")
	assert.Contains(t, out.Errors, "password")
	assert.Contains(t, out.Errors, "phone.area_code")
}

func TestSignIn_CredencialesInvalidas(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	registerCollaborator(t, app)

	resp := doJSON(t, app, http.MethodPost, "/users/signin", "", dto.SignInRequest{Email: testEmail, Password: "otra-clave"})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Credenciais inválidas", out.Message)
}

func TestSignIn_Exitoso(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	registerCollaborator(t, app)

	resp := doJSON(t, app, http.MethodPost, "/users/signin", "", dto.SignInRequest{Email: testEmail, Password: testPassword})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.AuthResponse](t, resp)
	assert.NotEmpty(t, out.Token)
	require.NotNil(t, out.Establishment)
	assert.Equal(t, "Padaria Central", out.Establishment.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokenDevuelve403(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/products/getProducts", "", nil)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Usuário não está autenticado", out.Message)
}

func TestAuthMiddleware_TokenInvalidoDevuelve403(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/products/getProducts", "Bearer esto.no.es.un.jwt", nil)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_AceptaBearerYTokenSolo(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	token := registerCollaborator(t, app)

	for _, header := range []string{"Bearer " + token, token} {
		resp := doJSON(t, app, http.MethodGet, "/products/getProducts", header, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, header)
	}
}

// failingUsers simula una caída del almacenamiento al cargar el usuario.
type failingUsers struct {
	repository.UserRepository
}

func (failingUsers) GetByID(context.Context, string) (*entity.User, error) {
	return nil, errors.New("connection refused")
}

func TestAuthMiddleware_ErrorDeAlmacenamientoDevuelve500(t *testing.T) {
	uc := auth.NewAuthUseCase(failingUsers{}, nil, nil, time.Second, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	app := fiber.New()
	app.Get("/privado", apphttp.AuthMiddleware(uc, logger.Nop()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	token, err := jwt.Generate(testJWTSecret, "u-1", "est-1", false, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodGet, "/privado", "Bearer "+token, nil)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INTERNAL", out.Code)
}

func TestAuthMiddleware_UsuarioInexistenteDevuelve403(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	token, err := jwt.Generate(testJWTSecret, "no-existe", "est-1", false, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodGet, "/products/getProducts", "Bearer "+token, nil)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_RutasPublicasNoExigenToken(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/users/signin", "", dto.SignInRequest{Email: testEmail, Password: testPassword})

	assert.NotEqual(t, fiber.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReportsProducts_CSVConColumnas(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	token := registerCollaborator(t, app)

	resp := doJSON(t, app, http.MethodPost, "/products/addProduct", token, map[string]any{
		"product": map[string]any{"name": "Coxinha", "value": 5, "cost": 2, "category": "Salgados", "code": "C1"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/reports/products", token, nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "products.csv")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Nome","Valor","Custo","Lucro","Categoria","Código","Número de vendas"`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"Coxinha","R$ 5,00","R$ 2,00","R$ 3,00"`), lines[1])
}

func TestReportsOrders_RangoInvalido(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	token := registerCollaborator(t, app)

	resp := doJSON(t, app, http.MethodPost, "/reports/orders", token, map[string]any{
		"start_date": "2024-03-10", "end_date": "03/03/2024",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Contains(t, out.Errors, "end_date")
}

func TestListPaymentMethods_DevuelveValoresPorDefecto(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	token := registerCollaborator(t, app)

	resp := doJSON(t, app, http.MethodGet, "/list/paymentMethods", token, nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[map[string]json.RawMessage](t, resp)
	var methods []dto.PaymentMethodResponse
	require.NoError(t, json.Unmarshal(out["paymentMethods"], &methods))
	assert.Len(t, methods, len(usecase.DefaultPaymentMethods))
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_OkYDown(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	down, _ := buildTestApp(t, func(context.Context) error { return errors.New("sin conexión") })
	resp = doJSON(t, down, http.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación
// ──────────────────────────────────────────────────────────────────────────────

func TestImportOrders_SinArchivoDevuelve400(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	token := registerCollaborator(t, app)

	resp := doJSON(t, app, http.MethodPost, "/orders/addOrdersFromFile", token, dto.ImportRequest{
		StartDate: "2024-03-01", EndDate: "2024-03-31",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Não existe um arquivo para as datas informadas", out.Message)
}

func TestImports_CategoriaObligatoria(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	token := registerCollaborator(t, app)

	resp := doJSON(t, app, http.MethodPost, "/imports", token, dto.ImportRequest{
		StartDate: "2024-03-01", EndDate: "2024-03-31",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"The category field is required."}, out.Errors["category"])
}
