// Package config holds the command-line settings shared by both frontends.
//
// Settings resolve in three layers: compiled-in defaults, preferences saved
// in storage, then flags given explicitly on the command line.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
	"github.com/hailam/chessboard/internal/storage"
)

// Flags are the command-line settings.
type Flags struct {
	DataDir    string
	Memory     bool
	SquareSize int
	Flipped    bool
	KingSafety bool
	Mute       bool
	Verbose    bool
	Placement  string
	Turn       string
}

// Register defines the flags on fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	defaults := storage.DefaultPreferences()

	fs.StringVar(&f.DataDir, "datadir", "", "directory for preferences and session history (default: platform data dir)")
	fs.BoolVar(&f.Memory, "memory", false, "keep preferences and sessions in memory only")
	fs.IntVar(&f.SquareSize, "square", defaults.SquareSize, "board square size in pixels")
	fs.BoolVar(&f.Flipped, "flip", defaults.Flipped, "draw the board with row 7 at the top")
	fs.BoolVar(&f.KingSafety, "king-safety", defaults.KingSafety, "hide moves that leave the mover's king capturable")
	fs.BoolVar(&f.Mute, "mute", !defaults.SoundEnabled, "disable sound effects")
	fs.BoolVar(&f.Verbose, "v", false, "log selections and moves")
	fs.StringVar(&f.Placement, "placement", board.StartPlacement, "starting piece placement, rows top to bottom")
	fs.StringVar(&f.Turn, "turn", "white", "side to move first: white or black")
}

// Apply overrides prefs with the flags that were set explicitly on fs.
func (f *Flags) Apply(fs *flag.FlagSet, prefs *storage.Preferences) error {
	var err error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "square":
			if f.SquareSize <= 0 {
				err = fmt.Errorf("config: -square must be positive, got %d", f.SquareSize)
				return
			}
			prefs.SquareSize = f.SquareSize
		case "flip":
			prefs.Flipped = f.Flipped
		case "king-safety":
			prefs.KingSafety = f.KingSafety
		case "mute":
			prefs.SoundEnabled = !f.Mute
		}
	})
	return err
}

// ParseTurn parses "white" or "black".
func ParseTurn(s string) (board.Team, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return board.White, nil
	case "black", "b":
		return board.Black, nil
	}
	return board.White, fmt.Errorf("config: invalid turn %q", s)
}

// OpenStorage opens the store selected by -memory and -datadir.
func (f *Flags) OpenStorage() (*storage.Storage, error) {
	if f.Memory {
		return storage.OpenInMemory()
	}
	if f.DataDir == "" {
		return storage.NewStorage()
	}
	dbDir, err := storage.DatabaseDirIn(f.DataDir)
	if err != nil {
		return nil, err
	}
	return storage.Open(dbDir)
}

// NewState builds the game from -placement and -turn.
func (f *Flags) NewState(prefs *storage.Preferences, logger log.Interface) (*game.State, error) {
	turn, err := ParseTurn(f.Turn)
	if err != nil {
		return nil, err
	}
	opts := []game.Option{
		game.WithKingSafety(prefs.KingSafety),
		game.WithLogger(logger),
	}
	placement := f.Placement
	if placement == "" {
		placement = board.StartPlacement
	}
	return game.NewFromPlacement(placement, turn, opts...)
}

// SetupLogging installs the cli handler on w and returns the logger.
func SetupLogging(w io.Writer, verbose bool) log.Interface {
	log.SetHandler(cli.New(w))
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return log.Log
}

// Env is what both binaries build before their frontend starts.
type Env struct {
	Logger  log.Interface
	Storage *storage.Storage
	Prefs   *storage.Preferences
	State   *game.State
}

// Startup sets up logging on logw, opens storage, layers the explicitly set
// flags in fs over the stored preferences and builds the starting game. On
// error nothing is left open.
func (f *Flags) Startup(fs *flag.FlagSet, logw io.Writer) (*Env, error) {
	logger := SetupLogging(logw, f.Verbose)

	st, err := f.OpenStorage()
	if err != nil {
		return nil, fmt.Errorf("config: open storage: %w", err)
	}

	prefs, err := st.LoadPreferences()
	if err != nil {
		logger.WithError(err).Warn("load preferences, using defaults")
		prefs = storage.DefaultPreferences()
	}
	if err := f.Apply(fs, prefs); err != nil {
		st.Close()
		return nil, err
	}

	state, err := f.NewState(prefs, logger)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("config: starting position: %w", err)
	}

	return &Env{Logger: logger, Storage: st, Prefs: prefs, State: state}, nil
}

// Close releases the store.
func (e *Env) Close() error {
	return e.Storage.Close()
}
