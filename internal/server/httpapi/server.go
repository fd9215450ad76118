// Package httpapi exposes the trading platform over HTTP/JSON: account
// signup and login, and the bearer-token protected trade ledger.
package httpapi

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/energichain/server/internal/logging"
	"github.com/energichain/server/internal/server/metrics"
	"github.com/energichain/server/internal/server/models"
	"github.com/energichain/server/internal/server/services"
)

// UserService is the slice of the user service the HTTP layer consumes.
type UserService interface {
	SignUp(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
}

// TradeService is the slice of the trade service the HTTP layer consumes.
type TradeService interface {
	Create(ctx context.Context, ownerID string, energyUnits, pricePerUnit float64, tradeType string) (*models.Trade, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Trade, error)
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     UserService
	trades    TradeService
	metrics   *metrics.Metrics
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us UserService, ts TradeService, m *metrics.Metrics, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		trades:    ts,
		metrics:   m,
		jwtSecret: []byte(secretKey),
	}
}

// Run serves the API until ctx is cancelled, then drains in-flight requests
// before returning. Callers may release shared resources (the DB connection)
// as soon as Run comes back.
func (s *HTTPServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, lis)
}

func (s *HTTPServer) serve(ctx context.Context, lis net.Listener) error {

	srv := &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && err != http.ErrServerClosed {
		return err
	}

	// Serve returns the moment the listener closes; handlers may still be
	// running until Shutdown comes back.
	<-shutdownDone
	return nil
}
