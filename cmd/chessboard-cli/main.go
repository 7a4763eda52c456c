// Command chessboard-cli plays a game from the terminal, one command per line.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/fatih/color"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/textui"
)

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("chessboard-cli")
	}
}

func run() error {
	var flags config.Flags
	flags.Register(flag.CommandLine)
	noColor := flag.Bool("no-color", false, "print the board without ANSI colors")
	flag.Parse()

	env, err := flags.Startup(flag.CommandLine, os.Stderr)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := textui.New(env.State, os.Stdout,
		textui.WithStorage(env.Storage),
		textui.WithColor(!*noColor && !color.NoColor),
		textui.WithLogger(env.Logger),
	)
	if err := sh.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
