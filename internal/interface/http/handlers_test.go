package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Reidyensam/SeguimientoGastos/internal/application"
	"github.com/Reidyensam/SeguimientoGastos/internal/domain/entity"
	"github.com/Reidyensam/SeguimientoGastos/internal/domain/repository"
	handlers "github.com/Reidyensam/SeguimientoGastos/internal/interface/http"
	"github.com/Reidyensam/SeguimientoGastos/internal/router"
	"github.com/Reidyensam/SeguimientoGastos/internal/router/modules"
	"github.com/Reidyensam/SeguimientoGastos/pkg/helpers"
	"github.com/Reidyensam/SeguimientoGastos/pkg/validation"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeGastoRepo struct {
	mu     sync.Mutex
	gastos []entity.Gasto
}

func (r *fakeGastoRepo) Create(_ context.Context, g *entity.Gasto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	r.gastos = append(r.gastos, *g)
	return nil
}

func (r *fakeGastoRepo) ListByUser(_ context.Context, userID string) ([]entity.Gasto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Gasto, 0)
	for _, g := range r.gastos {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGastoRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Gasto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.gastos {
		if g.ID == id && g.UserID == userID {
			cp := g
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGastoRepo) Update(_ context.Context, g *entity.Gasto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.gastos {
		if r.gastos[i].ID == g.ID && r.gastos[i].UserID == g.UserID {
			r.gastos[i] = *g
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeGastoRepo) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.gastos {
		if r.gastos[i].ID == id && r.gastos[i].UserID == userID {
			r.gastos = append(r.gastos[:i], r.gastos[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// HandlersSuite spins up the real route modules over in-memory repositories.
type HandlersSuite struct {
	suite.Suite
	engine *gin.Engine
	users  *fakeUserRepo
	gastos *fakeGastoRepo
	jwt    *helpers.JWTManager
}

func (s *HandlersSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.users = newFakeUserRepo()
	s.gastos = &fakeGastoRepo{}
	s.jwt = helpers.NewJWTManager("testsecret", time.Hour)

	authSvc := application.NewAuthService(s.users, s.jwt, logger)
	gastoSvc := application.NewGastoService(s.gastos, logger)

	s.engine = gin.New()
	reg := router.NewRegistry(s.engine)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), s.jwt))
	reg.Add(modules.NewGastoModule(handlers.NewGastoHandler(gastoSvc, logger), s.jwt))
	reg.RegisterAll()
}

func (s *HandlersSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *HandlersSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *HandlersSuite) register(nombre, email, password string) (token string, userID string) {
	w := s.do(http.MethodPost, "/api/auth/registro", "", gin.H{
		"nombre": nombre, "email": email, "contraseña": password,
	})
	require.Equal(s.T(), http.StatusCreated, w.Code, "registro failed: %s", w.Body.String())
	body := s.decode(w)
	usuario := body["usuario"].(map[string]any)
	return body["token"].(string), usuario["id"].(string)
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) TestRegistroIssuesVerifiableToken() {
	token, userID := s.register("Ana", "ana@x.com", "password1")

	claims, err := s.jwt.Parse(token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), userID, claims.UserID)
}

func (s *HandlersSuite) TestRegistroNeverReturnsPassword() {
	w := s.do(http.MethodPost, "/api/auth/registro", "", gin.H{
		"nombre": "Ana", "email": "ana@x.com", "contraseña": "password1",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code)
	assert.NotContains(s.T(), w.Body.String(), "password1")
	assert.NotContains(s.T(), w.Body.String(), "$2a$")
}

func (s *HandlersSuite) TestRegistroDuplicateEmailCaseInsensitive() {
	s.register("Ana", "ana@x.com", "password1")

	w := s.do(http.MethodPost, "/api/auth/registro", "", gin.H{
		"nombre": "Otra Ana", "email": "Ana@X.com", "contraseña": "password2",
	})
	require.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "El usuario ya está registrado.", s.decode(w)["mensaje"])
}

func (s *HandlersSuite) TestRegistroRejectsMissingAndMalformedFields() {
	cases := []struct {
		name string
		body gin.H
	}{
		{"missing nombre", gin.H{"email": "ana@x.com", "contraseña": "password1"}},
		{"missing email", gin.H{"nombre": "Ana", "contraseña": "password1"}},
		{"missing contraseña", gin.H{"nombre": "Ana", "email": "ana@x.com"}},
		{"short nombre", gin.H{"nombre": "An", "email": "ana@x.com", "contraseña": "password1"}},
		{"bad email", gin.H{"nombre": "Ana", "email": "not-an-email", "contraseña": "password1"}},
		{"short contraseña", gin.H{"nombre": "Ana", "email": "ana@x.com", "contraseña": "corta"}},
	}
	for _, tc := range cases {
		w := s.do(http.MethodPost, "/api/auth/registro", "", tc.body)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code, "%s: %s", tc.name, w.Body.String())
	}
}

func (s *HandlersSuite) TestLoginCaseInsensitiveEmail() {
	s.register("Ana", "ana@x.com", "password1")

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ana@X.com", "contraseña": "password1",
	})
	require.Equal(s.T(), http.StatusOK, w.Code)
	body := s.decode(w)
	assert.Equal(s.T(), "Login exitoso.", body["mensaje"])

	claims, err := s.jwt.Parse(body["token"].(string))
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), claims.UserID)
}

func (s *HandlersSuite) TestLoginUnknownUser() {
	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "nadie@x.com", "contraseña": "password1",
	})
	require.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "Usuario no encontrado.", s.decode(w)["mensaje"])
}

func (s *HandlersSuite) TestLoginWrongPassword() {
	s.register("Ana", "ana@x.com", "password1")

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ana@x.com", "contraseña": "password2",
	})
	require.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "Contraseña incorrecta.", s.decode(w)["mensaje"])
}

func (s *HandlersSuite) TestPerfil() {
	token, userID := s.register("Ana", "ana@x.com", "password1")

	w := s.do(http.MethodGet, "/api/auth/perfil", token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	usuario := s.decode(w)["usuario"].(map[string]any)
	assert.Equal(s.T(), userID, usuario["id"])
	assert.Equal(s.T(), "Ana", usuario["nombre"])
	assert.Equal(s.T(), "ana@x.com", usuario["email"])
}

func (s *HandlersSuite) TestPerfilUserNoLongerExists() {
	token, _, err := s.jwt.Generate(uuid.NewString())
	require.NoError(s.T(), err)

	w := s.do(http.MethodGet, "/api/auth/perfil", token, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *HandlersSuite) TestProtectedRoutesRejectBadTokens() {
	// No Authorization header at all
	w := s.do(http.MethodGet, "/api/gastos", "", nil)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
	assert.Equal(s.T(), "Token no proporcionado.", s.decode(w)["mensaje"])

	// Wrong scheme
	req := httptest.NewRequest(http.MethodGet, "/api/gastos", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	assert.Equal(s.T(), http.StatusForbidden, rec.Code)

	// Garbage bearer token
	w = s.do(http.MethodGet, "/api/gastos", "not-a-token", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Token inválido.", s.decode(w)["mensaje"])
}

func (s *HandlersSuite) TestListEmptyReturnsArray() {
	token, _ := s.register("Ana", "ana@x.com", "password1")

	w := s.do(http.MethodGet, "/api/gastos", token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "[]", strings.TrimSpace(w.Body.String()))
}

func (s *HandlersSuite) TestCrearGastoValidations() {
	token, _ := s.register("Ana", "ana@x.com", "password1")

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing nombre", gin.H{"monto": 5}},
		{"blank nombre", gin.H{"nombre": "   ", "monto": 5}},
		{"missing monto", gin.H{"nombre": "Café"}},
		{"zero monto", gin.H{"nombre": "Café", "monto": 0}},
		{"negative monto", gin.H{"nombre": "Café", "monto": -3}},
		{"non numeric monto", gin.H{"nombre": "Café", "monto": "cinco"}},
		{"unknown categoria", gin.H{"nombre": "Café", "monto": 5, "categoria": "Lujos"}},
		{"bad fecha", gin.H{"nombre": "Café", "monto": 5, "fecha": "ayer"}},
	}
	for _, tc := range cases {
		w := s.do(http.MethodPost, "/api/gastos", token, tc.body)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code, "%s: %s", tc.name, w.Body.String())
	}
}

func (s *HandlersSuite) TestCrearGastoAppliesDefaults() {
	token, userID := s.register("Ana", "ana@x.com", "password1")

	w := s.do(http.MethodPost, "/api/gastos", token, gin.H{"nombre": "Café", "monto": 5})
	require.Equal(s.T(), http.StatusCreated, w.Code)
	body := s.decode(w)
	assert.Equal(s.T(), "Café", body["nombre"])
	assert.Equal(s.T(), 5.0, body["monto"])
	assert.Equal(s.T(), "Otros", body["categoria"])
	assert.Equal(s.T(), false, body["completado"])
	assert.Equal(s.T(), userID, body["usuarioId"])
	assert.NotEmpty(s.T(), body["fecha"])
	assert.NotEmpty(s.T(), body["id"])
}

func (s *HandlersSuite) TestOwnershipIsolation() {
	tokenA, _ := s.register("Ana", "ana@x.com", "password1")
	tokenB, _ := s.register("Beto", "beto@x.com", "password1")

	w := s.do(http.MethodPost, "/api/gastos", tokenA, gin.H{
		"nombre": "Coffee", "monto": 5, "fecha": "2024-01-01", "categoria": "Otros",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code)
	gastoID := s.decode(w)["id"].(string)

	// B cannot see it
	w = s.do(http.MethodGet, "/api/gastos", tokenB, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "[]", strings.TrimSpace(w.Body.String()))

	// B cannot update or delete it; response is indistinguishable from absence
	w = s.do(http.MethodPut, "/api/gastos/"+gastoID, tokenB, gin.H{"monto": 1})
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	w = s.do(http.MethodDelete, "/api/gastos/"+gastoID, tokenB, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	// A's record is untouched
	w = s.do(http.MethodGet, "/api/gastos", tokenA, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), 5.0, list[0]["monto"])
}

func (s *HandlersSuite) TestActualizarGastoParcial() {
	token, _ := s.register("Ana", "ana@x.com", "password1")

	w := s.do(http.MethodPost, "/api/gastos", token, gin.H{
		"nombre": "Cine", "monto": 12, "categoria": "Entretenimiento",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code)
	gastoID := s.decode(w)["id"].(string)

	w = s.do(http.MethodPut, "/api/gastos/"+gastoID, token, gin.H{"monto": 15.5})
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "Gasto actualizado correctamente.", s.decode(w)["mensaje"])

	w = s.do(http.MethodPut, "/api/gastos/"+gastoID, token, gin.H{"completado": true})
	require.Equal(s.T(), http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/gastos", token, nil)
	var list []map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), "Cine", list[0]["nombre"])
	assert.Equal(s.T(), 15.5, list[0]["monto"])
	assert.Equal(s.T(), "Entretenimiento", list[0]["categoria"])
	assert.Equal(s.T(), true, list[0]["completado"])
}

func (s *HandlersSuite) TestActualizarGastoValidations() {
	token, _ := s.register("Ana", "ana@x.com", "password1")

	w := s.do(http.MethodPost, "/api/gastos", token, gin.H{"nombre": "Cine", "monto": 12})
	require.Equal(s.T(), http.StatusCreated, w.Code)
	gastoID := s.decode(w)["id"].(string)

	cases := []gin.H{
		{"monto": 0},
		{"monto": -1},
		{"nombre": "   "},
		{"categoria": "Lujos"},
		{"fecha": "mañana"},
	}
	for i, body := range cases {
		w := s.do(http.MethodPut, "/api/gastos/"+gastoID, token, body)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code, "case %d: %s", i, w.Body.String())
	}

	// Unknown and malformed ids both read as absent
	w = s.do(http.MethodPut, "/api/gastos/"+uuid.NewString(), token, gin.H{"monto": 1})
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	w = s.do(http.MethodPut, "/api/gastos/no-uuid", token, gin.H{"monto": 1})
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *HandlersSuite) TestEliminarGasto() {
	token, _ := s.register("Ana", "ana@x.com", "password1")

	w := s.do(http.MethodPost, "/api/gastos", token, gin.H{"nombre": "Café", "monto": 5})
	require.Equal(s.T(), http.StatusCreated, w.Code)
	gastoID := s.decode(w)["id"].(string)

	w = s.do(http.MethodDelete, "/api/gastos/"+gastoID, token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "Gasto eliminado correctamente.", s.decode(w)["mensaje"])

	w = s.do(http.MethodGet, "/api/gastos", token, nil)
	assert.Equal(s.T(), "[]", strings.TrimSpace(w.Body.String()))

	// Deleting again reports not found
	w = s.do(http.MethodDelete, "/api/gastos/"+gastoID, token, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

// Full journey: registro → login → crear → listar → eliminar → listar vacío.
func (s *HandlersSuite) TestEscenarioCompleto() {
	w := s.do(http.MethodPost, "/api/auth/registro", "", gin.H{
		"nombre": "Ana", "email": "ana@x.com", "contraseña": "password1",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code)
	require.NotEmpty(s.T(), s.decode(w)["token"])

	w = s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ana@X.com", "contraseña": "password1",
	})
	require.Equal(s.T(), http.StatusOK, w.Code)
	token := s.decode(w)["token"].(string)

	w = s.do(http.MethodPost, "/api/gastos", token, gin.H{
		"nombre": "Coffee", "monto": 5, "fecha": "2024-01-01", "categoria": "Otros",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code)
	created := s.decode(w)
	assert.Equal(s.T(), "Coffee", created["nombre"])

	w = s.do(http.MethodGet, "/api/gastos", token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), created["id"], list[0]["id"])

	w = s.do(http.MethodDelete, "/api/gastos/"+created["id"].(string), token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/gastos", token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "[]", strings.TrimSpace(w.Body.String()))
}
