package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/account"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/budget"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/entity"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/header"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/status"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/tag"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/user"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	AllowedOrigins []string
	Service        *service.Service
	Sessions       *auth.SessionManager
	Checks         map[string]status.Check
}

// Handler builds the router with every route registered.
func (r *Rest) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	statusHandler := status.NewHandler(r.Checks)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Cashbook API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		auth.SecurityScheme: {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(router, config)
	api.UseMiddleware(logging.Middleware(r.Logger))
	api.UseMiddleware(auth.Middleware(api, r.Sessions))

	r.register(api)
	return router
}

func (r *Rest) register(api huma.API) {
	svc := r.Service

	user.NewRegisterHandler(svc.User, r.Sessions).Register(api)
	user.NewLoginHandler(svc.User, r.Sessions).Register(api)
	user.NewLogoutHandler(r.Sessions).Register(api)
	user.NewMeHandler(svc.User).Register(api)
	user.NewUpdateProfileHandler(svc.User).Register(api)

	account.NewCreateAccountHandler(svc.Account).Register(api)
	account.NewGetAccountHandler(svc.Account).Register(api)
	account.NewListAccountsHandler(svc.Account).Register(api)
	account.NewUpdateAccountHandler(svc.Account).Register(api)

	header.NewHandler(svc.Header).Register(api)
	tag.NewHandler(svc.Tag).Register(api)
	entity.NewHandler(svc.Entity).Register(api)

	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(svc.Transaction).Register(api)

	budget.NewCreateBudgetHandler(svc.Budget).Register(api)
	budget.NewListBudgetsHandler(svc.Budget).Register(api)
	budget.NewUpdateBudgetHandler(svc.Budget).Register(api)
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
