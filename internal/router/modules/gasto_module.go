package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Reidyensam/SeguimientoGastos/internal/container"
	handlers "github.com/Reidyensam/SeguimientoGastos/internal/interface/http"
	"github.com/Reidyensam/SeguimientoGastos/internal/interface/middleware"
	"github.com/Reidyensam/SeguimientoGastos/pkg/helpers"
)

// GastoModule wires the expense ledger routes, all behind bearer auth with a
// per-user rate limit.

type GastoModule struct {
	Handler *handlers.GastoHandler
	JWT     *helpers.JWTManager
}

func NewGastoModule(h *handlers.GastoHandler, jwt *helpers.JWTManager) *GastoModule {
	return &GastoModule{Handler: h, JWT: jwt}
}

func (m *GastoModule) Register(rg *gin.RouterGroup) {
	gastos := rg.Group("/gastos")
	gastos.Use(middleware.BearerAuth(m.JWT))
	gastos.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		gastos.GET("", m.Handler.List)
		gastos.POST("", m.Handler.Create)
		gastos.PUT("/:id", m.Handler.Update)
		gastos.DELETE("/:id", m.Handler.Delete)
	}
}
