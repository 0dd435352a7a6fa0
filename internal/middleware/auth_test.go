package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lotusspa/salon-scheduler/internal/config"
	"github.com/lotusspa/salon-scheduler/internal/domain/account"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      float64(7),
		"username": "alice",
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware(cfg)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetUint(ContextUserID),
			"role":   c.GetString(ContextUserRole),
		})
	})
	r.GET("/probe", chain...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
	}{
		{"bearer token", "Bearer " + signToken(t, cfg.JWTSecret, "CUSTOMER"), "", http.StatusOK},
		{"cookie token", "", signToken(t, cfg.JWTSecret, "CUSTOMER"), http.StatusOK},
		{"missing token", "", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", "", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "CUSTOMER"), "", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", "", http.StatusUnauthorized},
	}

	router := authRouter(cfg)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body=%s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	cfg := testConfig()
	router := authRouter(cfg, RequireRoles(account.RoleSalonOwner))

	tests := []struct {
		role       string
		wantStatus int
	}{
		{"SALON_OWNER", http.StatusOK},
		{"CUSTOMER", http.StatusForbidden},
		{"ADMIN", http.StatusForbidden},
		{"UNKNOWN", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, tt.role))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("role %s: status = %d, want %d", tt.role, w.Code, tt.wantStatus)
			}
		})
	}
}
