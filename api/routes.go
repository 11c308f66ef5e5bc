package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/account"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/stats"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const shutdownTimeout = 30 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Status  status.Handler
}

// Handler builds the full HTTP handler: every API route plus /status,
// wrapped with request logging and tracing.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Finance Tracker API", "1.0.0"))
	r.register(api)

	statusHandler := r.Status
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return otelhttp.NewHandler(logging.Middleware(r.Logger, mux), "finance-tracker")
}

func (r *Rest) register(api huma.API) {
	svc := r.Service

	account.NewCreateAccountHandler(svc.Account).Register(api)
	account.NewListAccountsHandler(svc.Account).Register(api)
	account.NewGetAccountHandler(svc.Account).Register(api)
	account.NewEditAccountHandler(svc.Account).Register(api)
	account.NewUpdateAccountHandler(svc.Account).Register(api)
	account.NewDeleteAccountHandler(svc.Account).Register(api)
	account.NewToggleAccountStatusHandler(svc.Account).Register(api)
	account.NewActiveAccountsHandler(svc.Account).Register(api)
	account.NewRecalculateBalanceHandler(svc.Account).Register(api)

	category.NewCreateCategoryHandler(svc.Category).Register(api)
	category.NewListCategoriesHandler(svc.Category).Register(api)
	category.NewGetCategoryHandler(svc.Category).Register(api)
	category.NewEditCategoryHandler(svc.Category).Register(api)
	category.NewUpdateCategoryHandler(svc.Category).Register(api)
	category.NewDeleteCategoryHandler(svc.Category).Register(api)
	category.NewToggleCategoryStatusHandler(svc.Category).Register(api)
	category.NewLookupHandler(svc.Category).Register(api)

	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewGetTransactionHandler(svc.Transaction).Register(api)
	transaction.NewEditTransactionHandler(svc.Transaction, svc.Account, svc.Category).Register(api)
	transaction.NewUpdateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(api)
	transaction.NewBulkDeleteHandler(svc.Transaction).Register(api)

	budget.NewCreateBudgetHandler(svc.Budget).Register(api)
	budget.NewListBudgetsHandler(svc.Budget).Register(api)
	budget.NewGetBudgetHandler(svc.Budget).Register(api)
	budget.NewEditBudgetHandler(svc.Budget, svc.Category).Register(api)
	budget.NewUpdateBudgetHandler(svc.Budget).Register(api)
	budget.NewDeleteBudgetHandler(svc.Budget).Register(api)
	budget.NewToggleBudgetStatusHandler(svc.Budget).Register(api)

	stats.NewHandler(svc.Stats).Register(api)
	stats.NewDashboardHandler(svc.Stats).Register(api)
}

// Serve listens until ctx is cancelled, then shuts the server down, letting
// in-flight requests finish.
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
