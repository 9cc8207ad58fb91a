package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "go-user-api/docs"
	"go-user-api/handler"
	"go-user-api/service"
)

func NewRouter(authHandler *handler.AuthHandler, userHandler *handler.UserHandler, authService *service.AuthService) http.Handler {
	mux := http.NewServeMux()

	requireAuth := handler.AuthMiddleware(authService)

	mux.HandleFunc("GET /{$}", handler.HealthCheck)

	mux.Handle("POST /api/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/auth/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))
	mux.Handle("GET /api/auth/me", requireAuth(handler.ErrorHandlingMiddleware(authHandler.Me)))

	mux.Handle("GET /api/users/email/{email}", handler.ErrorHandlingMiddleware(userHandler.GetByEmail))
	mux.Handle("GET /api/users/id/{id}", handler.ErrorHandlingMiddleware(userHandler.GetByID))
	mux.Handle("GET /api/users/all", handler.ErrorHandlingMiddleware(userHandler.GetAll))
	mux.Handle("POST /api/users", handler.ErrorHandlingMiddleware(userHandler.Create))
	mux.Handle("PUT /api/users/{id}", handler.ErrorHandlingMiddleware(userHandler.Update))
	mux.Handle("DELETE /api/users/{id}", handler.ErrorHandlingMiddleware(userHandler.Delete))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler())

	return handler.RequestIDMiddleware(handler.MetricsMiddleware(mux))
}
