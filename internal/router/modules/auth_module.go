package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Reidyensam/SeguimientoGastos/internal/container"
	handlers "github.com/Reidyensam/SeguimientoGastos/internal/interface/http"
	"github.com/Reidyensam/SeguimientoGastos/internal/interface/middleware"
	"github.com/Reidyensam/SeguimientoGastos/pkg/helpers"
)

// AuthModule wires registration, login and profile routes.
// Public: POST /api/auth/registro, POST /api/auth/login
// Protected: GET /api/auth/perfil

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registroLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/registro", registroLimiter, m.Handler.Registro)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	{
		auth.GET("/auth/perfil", m.Handler.Perfil)
	}
}
