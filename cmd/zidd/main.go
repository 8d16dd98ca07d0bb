package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/cmd/zidd/app"
	"github.com/zeroid/zid/commands/server"
)

var (
	varHome     *string
	varLogLevel *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".zidd")
	varHome = flag.String("home", defaultHome, "directory to store files under")
	varLogLevel = flag.String("log_level", "info", "log level, for example \"info\" or \"main:info,state:error,*:error\"")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Fprintln(os.Stderr, "zidd")
	fmt.Fprintln(os.Stderr, "        Attestation token ABCI application")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "help      Print this message")
	fmt.Fprintln(os.Stderr, "init      Initialize app options in genesis file, optionally with the issuer address")
	fmt.Fprintln(os.Stderr, "start     Run the abci server")
	fmt.Fprintln(os.Stderr, "validate  Check the app state of genesis files")
	fmt.Fprintln(os.Stderr, "version   Print the app version")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Missing command:")
		helpMessage()
		os.Exit(1)
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	logger, err := flags.ParseLogLevel(*varLogLevel, logger, "info")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %s\n", err)
		os.Exit(1)
	}
	logger = logger.With("module", "zid")

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(app.GenerateApp, logger, *varHome, rest)
	case "validate":
		err = server.ValidateGenesis(app.Initializers(), rest)
	case "version":
		fmt.Println(zid.Version())
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		helpMessage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n\n", err)
		os.Exit(1)
	}
}
