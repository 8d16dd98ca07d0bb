// zidapi is a read-only HTTP gateway to the attestation ledger of a zid
// node.
package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/zeroid/zid/client"
)

type configuration struct {
	HTTP       string
	Tendermint string
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "zidapi")

	conf := configuration{
		HTTP:       env("HTTP", ":8000"),
		Tendermint: env("TENDERMINT", "http://localhost:26657"),
	}

	if err := run(conf, logger); err != nil {
		logger.Error("gateway stopped", "err", err)
		os.Exit(1)
	}
}

func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func run(conf configuration, logger log.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	rt := NewRouter(client.NewHTTPClient(conf.Tendermint), logger, reg)

	logger.Info("listening", "addr", conf.HTTP, "tendermint", conf.Tendermint)
	if err := http.ListenAndServe(conf.HTTP, rt); err != nil {
		return err
	}
	return nil
}
