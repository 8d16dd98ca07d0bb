package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/client"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/x/sbt"
)

const defaultTimeout = 10 * time.Second

// Ledger is the part of the zid client used by the gateway.
type Ledger interface {
	Status(context.Context) (*client.Status, error)
	Issuer(context.Context) (zid.Address, error)
	TotalSupply(context.Context) (uint64, error)
	Token(context.Context, uint64) (*sbt.Token, error)
}

var _ Ledger = (*client.Client)(nil)

// NewRouter returns the gateway HTTP handler. Request metrics are
// registered with reg and served under /metrics.
func NewRouter(ledger Ledger, logger log.Logger, reg *prometheus.Registry) chi.Router {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zidapi",
		Name:      "requests_total",
		Help:      "Number of served HTTP requests.",
	}, []string{"route", "code"})
	reg.MustRegister(requests)

	rt := chi.NewRouter()
	rt.Use(middleware.RequestID)
	rt.Use(requestLogger(logger, requests))
	rt.Use(middleware.Recoverer)
	rt.Use(middleware.Timeout(defaultTimeout))

	rt.Method(http.MethodGet, "/info", &InfoHandler{ledger: ledger, logger: logger})
	rt.Method(http.MethodGet, "/issuer", &IssuerHandler{ledger: ledger, logger: logger})
	rt.Method(http.MethodGet, "/supply", &SupplyHandler{ledger: ledger, logger: logger})
	rt.Method(http.MethodGet, "/tokens/{id}", &TokenHandler{ledger: ledger, logger: logger})
	rt.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	rt.NotFound(func(w http.ResponseWriter, r *http.Request) {
		JSONErr(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	return rt
}

func requestLogger(logger log.Logger, requests *prometheus.CounterVec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			requests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
			logger.Debug("request",
				"id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"took", time.Since(start))
		}
		return http.HandlerFunc(fn)
	}
}

type InfoHandler struct {
	ledger Ledger
	logger log.Logger
}

func (h *InfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, err := h.ledger.Status(r.Context())
	if err != nil {
		writeLedgerErr(w, h.logger, "status", err)
		return
	}
	JSONResp(w, http.StatusOK, struct {
		ChainID    string `json:"chain_id"`
		Height     int64  `json:"height"`
		CatchingUp bool   `json:"catching_up"`
		Version    string `json:"version"`
	}{
		ChainID:    status.ChainID,
		Height:     status.Height,
		CatchingUp: status.CatchingUp,
		Version:    zid.Version(),
	})
}

type IssuerHandler struct {
	ledger Ledger
	logger log.Logger
}

func (h *IssuerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	issuer, err := h.ledger.Issuer(r.Context())
	if err != nil {
		writeLedgerErr(w, h.logger, "issuer", err)
		return
	}
	JSONResp(w, http.StatusOK, struct {
		Issuer zid.Address `json:"issuer"`
	}{
		Issuer: issuer,
	})
}

type SupplyHandler struct {
	ledger Ledger
	logger log.Logger
}

func (h *SupplyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	supply, err := h.ledger.TotalSupply(r.Context())
	if err != nil {
		writeLedgerErr(w, h.logger, "supply", err)
		return
	}
	JSONResp(w, http.StatusOK, struct {
		TotalSupply uint64 `json:"total_supply"`
	}{
		TotalSupply: supply,
	})
}

type TokenHandler struct {
	ledger Ledger
	logger log.Logger
}

func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		JSONErr(w, http.StatusNotFound, "token id must be a positive number")
		return
	}
	token, err := h.ledger.Token(r.Context(), id)
	if err != nil {
		writeLedgerErr(w, h.logger, "token", err)
		return
	}
	JSONResp(w, http.StatusOK, struct {
		ID          uint64      `json:"id"`
		Owner       zid.Address `json:"owner"`
		MetadataURI string      `json:"metadata_uri"`
	}{
		ID:          id,
		Owner:       token.Owner,
		MetadataURI: token.MetadataURI,
	})
}

// writeLedgerErr maps a client error to the HTTP status code. Only not found
// errors are described to the caller.
func writeLedgerErr(w http.ResponseWriter, logger log.Logger, what string, err error) {
	switch {
	case sbt.ErrTokenNotFound.Is(err), errors.ErrNotFound.Is(err):
		JSONErr(w, http.StatusNotFound, err.Error())
	case errors.ErrNetwork.Is(err):
		logger.Error("node unavailable", "query", what, "err", err)
		JSONErr(w, http.StatusBadGateway, http.StatusText(http.StatusBadGateway))
	default:
		logger.Error("node query", "query", what, "err", err)
		JSONErr(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// JSONResp writes the content as JSON encoded response.
func JSONResp(w http.ResponseWriter, code int, content interface{}) {
	b, err := json.MarshalIndent(content, "", "\t")
	if err != nil {
		code = http.StatusInternalServerError
		b = []byte(`{"errors":["Internal Server Error"]}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

// JSONErr writes a single error as JSON encoded response.
func JSONErr(w http.ResponseWriter, code int, errText string) {
	JSONResp(w, code, struct {
		Errors []string `json:"errors"`
	}{
		Errors: []string{errText},
	})
}
