// Chessboard - a two-player board built with Ebitengine
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/ui"
)

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("chessboard")
	}
}

func run() error {
	var flags config.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	env, err := flags.Startup(flag.CommandLine, os.Stderr)
	if err != nil {
		return err
	}
	defer env.Close()

	g, err := ui.NewGame(ui.Config{
		State:   env.State,
		Prefs:   env.Prefs,
		Storage: env.Storage,
		Logger:  env.Logger,
	})
	if err != nil {
		return fmt.Errorf("start window: %w", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(g.ScreenSize())
	ebiten.SetWindowTitle("Chessboard")

	return ebiten.RunGame(g)
}
