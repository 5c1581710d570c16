package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/tokenswap"
	swapd "github.com/iov-one/tokenswap/cmd/swapd/app"
	"github.com/iov-one/tokenswap/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

type command struct {
	help string
	run  func(logger log.Logger, home string, args []string) error
}

var commands = map[string]command{
	"init": {
		help: "Write the app state into the genesis file",
		run: func(logger log.Logger, home string, args []string) error {
			return server.InitCmd(swapd.GenInitOptions, logger, home, args)
		},
	},
	"start": {
		help: "Run the abci server",
		run: func(logger log.Logger, home string, args []string) error {
			return server.StartCmd(swapd.GenerateApp, logger, home, args)
		},
	},
	"keys": {
		help: "Generate a new key pair",
		run: func(log.Logger, string, []string) error {
			_, keys, err := swapd.GenerateCoinKey()
			if err != nil {
				return err
			}
			fmt.Println(keys)
			return nil
		},
	},
	"version": {
		help: "Print the app version",
		run: func(log.Logger, string, []string) error {
			fmt.Println(tokenswap.Version())
			return nil
		},
	},
}

var order = []string{"init", "start", "keys", "version"}

func usage() {
	fmt.Fprintf(os.Stderr, "swapd: token swap escrow node\n\nUsage: swapd [-home dir] <command> [flags]\n\n")
	for _, name := range order {
		fmt.Fprintf(os.Stderr, "  %-9s %s\n", name, commands[name].help)
	}
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	home := flag.String("home", filepath.Join(os.Getenv("HOME"), ".swapd"), "directory to store files under")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "help" {
		usage()
		return
	}
	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "swap")
	if err := cmd.run(logger, *home, flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
