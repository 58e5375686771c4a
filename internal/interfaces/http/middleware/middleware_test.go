package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"art/internal/infrastructure/auth"
	"art/internal/shared/constants"
	"art/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeChecker struct {
	allowed map[string]bool
	err     error
}

func (f *fakeChecker) Enforce(role, resource, action string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.allowed[role+":"+resource+":"+action], nil
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"role":    c.GetString(constants.ContextKeyUserRole),
			"email":   c.GetString(ContextKeyEmail),
		})
	})
	engine.GET("/assets", handlers...)
	return engine
}

func TestRequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", 15)
	token, _, err := jwtSvc.Generate(7, "jane@example.com", constants.RoleAdmin)
	require.NoError(t, err)

	engine := newEngine(NewAuthMiddleware(jwtSvc, logger.NewDiscardLogger()).RequireAuth())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", want: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, want: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + token, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/assets", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"user_id":7,"role":"admin","email":"jane@example.com"}`, w.Body.String())
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	checker := &fakeChecker{allowed: map[string]bool{"admin:asset:allocate": true}}
	perm := NewPermissionMiddleware(checker, logger.NewDiscardLogger())

	withRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if role != "" {
				c.Set(constants.ContextKeyUserRole, role)
			}
			c.Next()
		}
	}

	tests := []struct {
		name string
		role string
		want int
	}{
		{name: "allowed", role: "admin", want: http.StatusOK},
		{name: "denied", role: "user", want: http.StatusForbidden},
		{name: "no role", role: "", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(withRole(tt.role), perm.RequirePermission("asset", "allocate"))
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}

	t.Run("checker error", func(t *testing.T) {
		failing := NewPermissionMiddleware(&fakeChecker{err: stderrors.New("db down")}, logger.NewDiscardLogger())
		engine := newEngine(withRole("admin"), failing.RequirePermission("asset", "allocate"))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://art.example.com"}))
	engine.GET("/assets", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.OPTIONS("/assets", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodOptions, "/assets", nil)
	req.Header.Set("Origin", "https://art.example.com")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://art.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/assets", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	engine := newEngine(CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodGet, "/assets", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequestID(t *testing.T) {
	engine := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/assets", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(constants.HeaderXRequestID))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets", nil))
	assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewDiscardLogger()), Logger(logger.NewDiscardLogger()))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
}
