package router

import (
	"github.com/Reidyensam/SeguimientoGastos/internal/application"
	"github.com/Reidyensam/SeguimientoGastos/internal/container"
	pginfra "github.com/Reidyensam/SeguimientoGastos/internal/infrastructure/postgres"
	handlers "github.com/Reidyensam/SeguimientoGastos/internal/interface/http"
	"github.com/Reidyensam/SeguimientoGastos/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewAuthService(repo, container.GetJWT(), container.GetLogger())
	handler := handlers.NewAuthHandler(svc, container.GetLogger())
	return modules.NewAuthModule(handler, container.GetJWT())
}

func buildGastoModule() *modules.GastoModule {
	repo := pginfra.NewGastoRepository(container.GetPGPool())
	svc := application.NewGastoService(repo, container.GetLogger())
	handler := handlers.NewGastoHandler(svc, container.GetLogger())
	return modules.NewGastoModule(handler, container.GetJWT())
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup, after the container is filled.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildGastoModule())
}
