package server

import (
	"flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/zeroid/zid/errors"
)

const (
	flagBind    = "bind"
	flagDebug   = "debug"
	flagMetrics = "metrics"
)

type startArgs struct {
	bind    string
	debug   bool
	metrics string
}

func parseStartArgs(args []string) (startArgs, error) {
	var res startArgs
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&res.bind, flagBind, "tcp://localhost:26658", "address server listens on")
	startFlags.BoolVar(&res.debug, flagDebug, false, "call stack returned on error")
	startFlags.StringVar(&res.metrics, flagMetrics, "", "address of the prometheus metrics endpoint, disabled if empty")
	if err := startFlags.Parse(args); err != nil {
		return res, errors.Wrap(errors.ErrInput, err.Error())
	}
	return res, nil
}

// AppGenerator lets us lazily initialize app, using home dir and logger
// potentially initialized with other flags. The registerer is nil when
// metrics are disabled.
type AppGenerator func(home string, logger log.Logger, debug bool, reg prometheus.Registerer) (abci.Application, error)

// StartCmd initializes the application and serves it over the ABCI
// socket until the process is terminated.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	flags, err := parseStartArgs(args)
	if err != nil {
		return err
	}

	var reg *prometheus.Registry
	if flags.metrics != "" {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
			prometheus.NewGoCollector(),
		)
	}

	// A nil *Registry must not reach the generator as a non-nil interface.
	var app abci.Application
	if reg != nil {
		app, err = gen(home, logger, flags.debug, reg)
	} else {
		app, err = gen(home, logger, flags.debug, nil)
	}
	if err != nil {
		return err
	}

	if reg != nil {
		go serveMetrics(logger.With("module", "metrics"), flags.metrics, reg)
	}

	logger.Info("Starting ABCI app", "bind", flags.bind)
	svr, err := server.NewServer(flags.bind, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrNetwork, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrNetwork, "cannot start server: %s", err)
	}

	cmn.TrapSignal(logger, func() {
		logger.Info("Stopping ABCI app")
		if err := svr.Stop(); err != nil {
			logger.Error("cannot stop server", "err", err)
		}
	})

	// Wait forever
	select {}
}

func serveMetrics(logger log.Logger, addr string, g prometheus.Gatherer) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	logger.Info("Serving metrics", "bind", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "err", err)
	}
}
