/*
Package app links together all the various components to construct the
zid application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/app"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/gconf"
	"github.com/zeroid/zid/store/iavl"
	"github.com/zeroid/zid/x"
	"github.com/zeroid/zid/x/sbt"
	"github.com/zeroid/zid/x/sigs"
	"github.com/zeroid/zid/x/utils"
)

// Name is reported by abci Info.
const Name = "zid"

// Authenticator returns the authentication used by all handlers, public
// key signatures.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators to handle logging, recovery, metrics,
// transfer refusal and authentication. Metrics are collected only if reg is
// not nil.
func Chain(reg prometheus.Registerer) app.Decorators {
	chain := app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
	)
	if reg != nil {
		chain = chain.Chain(utils.NewMetrics(reg))
	}
	return chain.Chain(
		// A failed message leaves no trace, nonce updates included.
		utils.NewSavepoint().OnCheck().OnDeliver(),
		sbt.NewTransferGuard(),
		// Unsigned transactions pass; the handlers decide who is allowed.
		sigs.NewDecorator().AllowMissingSigs(),
	)
}

// Router returns a router dispatching all sbt messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	sbt.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a query router allowing access to "/sbt/tokens",
// "/sbt/supply", "/sbt/issuer" and "/auth".
func QueryRouter() zid.QueryRouter {
	r := zid.NewQueryRouter()
	r.RegisterAll(
		sbt.RegisterQuery,
		sigs.RegisterQuery,
		gconf.RegisterQuery,
	)
	return r
}

// Initializers returns all genesis initializers.
func Initializers() zid.Initializer {
	return zid.ChainInitializers(
		&sbt.Initializer{},
	)
}

// Stack wires up the router with the decorator chain. This can be passed
// into BaseApp.
func Stack(reg prometheus.Registerer) zid.Handler {
	authFn := Authenticator()
	return Chain(reg).WithHandler(Router(authFn))
}

// Application constructs the ABCI application. An empty dbPath keeps all
// data in memory.
func Application(h zid.Handler, dbPath string, logger log.Logger, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(Name, kv, QueryRouter(), context.Background()).
		WithInit(Initializers()).
		WithLogger(logger)
	return app.NewBaseApp(store, TxDecoder, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists the data to
// the named path.
func CommitKVStore(dbPath string) (zid.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}
	// Some callers add a ".db" suffix, it is added again by the db layer.
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}

// GenerateApp is used to create a stub for server/start.go command. The
// database is kept in the "zid.db" directory of home.
func GenerateApp(home string, logger log.Logger, debug bool, reg prometheus.Registerer) (abci.Application, error) {
	stack := Stack(reg)
	application, err := Application(stack, filepath.Join(home, "zid.db"), logger, debug)
	if err != nil {
		return nil, err
	}
	return application, nil
}
