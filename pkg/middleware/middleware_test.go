package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type stubValidator struct {
	claims *domain.Claims
	err    error
}

func (s stubValidator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

type codedError struct{ code string }

func (e codedError) Error() string   { return "expirado" }
func (e codedError) APICode() string { return e.code }

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		validator stubValidator
		status    int
	}{
		{name: "Sem cabeçalho", header: "", status: http.StatusUnauthorized},
		{name: "Sem Bearer", header: "Token abc", status: http.StatusUnauthorized},
		{name: "Token inválido", header: "Bearer abc", validator: stubValidator{err: errors.New("ruim")}, status: http.StatusUnauthorized},
		{name: "Token expirado", header: "Bearer abc", validator: stubValidator{err: codedError{code: apiErrors.ErrExpiredToken}}, status: http.StatusUnauthorized},
		{name: "Token válido", header: "Bearer abc", validator: stubValidator{claims: &domain.Claims{Role: domain.RoleAdmin}}, status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name   string
		claims *domain.Claims
		status int
	}{
		{name: "Sem claims", status: http.StatusUnauthorized},
		{name: "Perfil sem permissão", claims: &domain.Claims{Role: "viewer"}, status: http.StatusForbidden},
		{name: "Administrador", claims: &domain.Claims{Role: domain.RoleAdmin}, status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminOnly()(okHandler)
			if tt.claims != nil {
				handler = AuthMiddleware(stubValidator{claims: tt.claims})(handler)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil)
			req.Header.Set("Authorization", "Bearer abc")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/dashboard", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://qualquer.example")
	rec = httptest.NewRecorder()
	Cors([]string{"*"})(okHandler).ServeHTTP(rec, req)
	assert.Equal(t, "http://qualquer.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	})
	handler := LoggingMiddleware()(LogPanicMiddleware()(panicking))

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	require.NotPanics(t, func() { handler.ServeHTTP(rec, req) })

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
