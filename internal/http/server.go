// Package http provides the JSON API server and handler implementations.
package http

import (
	"context"
	"net/http"
	"time"

	"baniya/internal/core"
	applog "baniya/internal/log"
	"baniya/internal/services"
)

// Ports for the server's collaborators.
type (
	// FundLedger is the persisted savings counter.
	FundLedger interface {
		GetFund(ctx context.Context, user string) (core.Fund, error)
		AddFund(ctx context.Context, user string, amount float64) (core.Fund, error)
		ListDeposits(ctx context.Context, user string) ([]core.Deposit, error)
	}

	// ReceiptAnalyzer turns an uploaded receipt image into a price comparison.
	ReceiptAnalyzer interface {
		Analyze(ctx context.Context, imageData []byte) (services.QCommerceResult, error)
	}
)

type Server struct {
	http.Server

	fund     FundLedger
	analyzer ReceiptAnalyzer

	cors        *corsPolicy
	defaultUser string
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server. allowedOrigins feeds the CORS policy; defaultUser is the
// ledger key used when a request carries no user parameter.
func NewServer(addr string, fund FundLedger, analyzer ReceiptAnalyzer, allowedOrigins []string, defaultUser string) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:           addr,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   120 * time.Second, // analyze waits on the model provider
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 16, // 64KB
		},
		fund:        fund,
		analyzer:    analyzer,
		cors:        newCORSPolicy(allowedOrigins),
		defaultUser: defaultUser,
	}

	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/", s.withCORS(s.handleRoot))
	mux.HandleFunc("/api/cc-helper/recommend", s.withCORS(s.handleRecommend))
	mux.HandleFunc("/api/qcommerce/analyze", s.withCORS(s.handleAnalyze))
	mux.HandleFunc("/api/sales/predictions", s.withCORS(s.handleSalesPredictions))
	mux.HandleFunc("/api/shaadi-fund", s.withCORS(s.handleFundGet))
	mux.HandleFunc("/api/shaadi-fund/add", s.withCORS(s.handleFundAdd))
	mux.HandleFunc("/api/shaadi-fund/history", s.withCORS(s.handleFundHistory))

	httpLogger := applog.New(applog.Config{Component: applog.ComponentHTTP})
	s.Handler = applog.AccessLog(httpLogger)(mux)

	return s
}
