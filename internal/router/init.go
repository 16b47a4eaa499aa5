package router

import (
	"github.com/fintrackhq/fintrack/internal/application"
	"github.com/fintrackhq/fintrack/internal/container"
	pginfra "github.com/fintrackhq/fintrack/internal/infrastructure/postgres"
	handlers "github.com/fintrackhq/fintrack/internal/interface/http"
	"github.com/fintrackhq/fintrack/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container
// singletons are in place.
func InitModules(r *Registry) {
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	txRepo := pginfra.NewTransactionRepository(container.GetPGPool())

	userSvc := application.NewUserService(userRepo, container.GetJWT(), container.GetLogger())
	txSvc := application.NewTransactionService(txRepo, container.GetRedis(), container.GetLogger())

	authHandler := handlers.NewAuthHandler(userSvc, container.GetLogger(), container.GetCookies())
	userHandler := handlers.NewUserHandler(userSvc, container.GetLogger())
	txHandler := handlers.NewTransactionHandler(txSvc, container.GetLogger())

	r.API.GET("/health_check", handlers.HealthCheck)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewTransactionModule(txHandler, container.GetJWT()))
}
