package server

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind  = "bind"
	flagDebug = "debug"
	flagDB    = "db"
)

// Database backends understood by the start command.
const (
	DBMemory = "memdb"
	DBIAVL   = "iavl"
	DBPebble = "pebble"
)

// StartOptions are the parsed flags of the start command.
type StartOptions struct {
	Bind  string
	Debug bool
	DB    string
}

func parseFlags(args []string) (StartOptions, error) {
	var opts StartOptions
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&opts.Bind, flagBind, "tcp://localhost:26658", "address server listens on")
	startFlags.BoolVar(&opts.Debug, flagDebug, false, "call stack returned on error")
	startFlags.StringVar(&opts.DB, flagDB, DBIAVL, "state database: memdb, iavl or pebble")
	if err := startFlags.Parse(args); err != nil {
		return opts, err
	}
	switch opts.DB {
	case DBMemory, DBIAVL, DBPebble:
	default:
		return opts, fmt.Errorf("unknown database %q", opts.DB)
	}
	return opts, nil
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, opts StartOptions, logger log.Logger) (abci.Application, error)

// StartCmd initializes the application, and runs the abci server until
// the process is signalled.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	// Generate the app in the proper dir
	app, err := gen(home, opts, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", opts.Bind, "db", opts.DB)

	svr, err := server.NewServer(opts.Bind, "socket", app)
	if err != nil {
		return fmt.Errorf("error creating listener: %v", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	logger.Info("Stopping ABCI app", "signal", s.String())
	return svr.Stop()
}
