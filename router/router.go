package router

import (
	"net/http"

	"github.com/Sifundo-B/BankApi/handler"
	"github.com/Sifundo-B/BankApi/model"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	withdrawalHandler *handler.WithdrawalHandler,
	auditHandler *handler.AuditHandler,
) http.Handler {
	mux := http.NewServeMux()

	// protect wraps a handler with token validation and a role gate.
	protect := func(h http.Handler, roles ...model.Role) http.Handler {
		return handler.AuthMiddleware(handler.RequireRoles(roles...)(h))
	}

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	mux.Handle("POST /api/auth/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("POST /api/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/auth/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))

	mux.Handle("GET /api/accounts/holder/{name}",
		protect(handler.ErrorHandlingMiddleware(accountHandler.GetAccountsByHolder),
			model.RoleAdmin, model.RoleBanker, model.RoleCustomer))
	mux.Handle("GET /api/accounts",
		protect(handler.ErrorHandlingMiddleware(accountHandler.GetAllAccounts),
			model.RoleAdmin, model.RoleBanker))
	mux.Handle("GET /api/accounts/{accountNumber}",
		protect(handler.ErrorHandlingMiddleware(accountHandler.GetAccount),
			model.RoleAdmin, model.RoleBanker, model.RoleCustomer))

	mux.Handle("POST /api/withdrawals",
		protect(handler.ErrorHandlingMiddleware(withdrawalHandler.CreateWithdrawal),
			model.RoleAdmin, model.RoleBanker, model.RoleCustomer))
	mux.Handle("GET /api/withdrawals/history/{accountNumber}",
		protect(handler.ErrorHandlingMiddleware(withdrawalHandler.GetWithdrawalHistory),
			model.RoleAdmin, model.RoleBanker))

	mux.Handle("GET /api/audit/account/{accountNumber}",
		protect(handler.ErrorHandlingMiddleware(auditHandler.GetAccountAuditLogs),
			model.RoleAdmin, model.RoleAuditor))
	mux.Handle("GET /api/audit/by-user/{userId}",
		protect(handler.ErrorHandlingMiddleware(auditHandler.GetAuditLogsByUser),
			model.RoleAdmin, model.RoleAuditor))
	mux.Handle("GET /api/audit/by-date",
		protect(handler.ErrorHandlingMiddleware(auditHandler.GetAuditLogsByDateRange),
			model.RoleAdmin, model.RoleAuditor))

	return mux
}
