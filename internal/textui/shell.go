// Package textui drives a game from a line-oriented terminal session.
package textui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
	"github.com/hailam/chessboard/internal/storage"
)

// ErrUsage reports a command with missing or extra arguments.
var ErrUsage = errors.New("usage")

// Shell reads commands and applies them to a game.
type Shell struct {
	state   *game.State
	out     io.Writer
	tracker *storage.Tracker
	logger  log.Interface
	colors  bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithStorage records sessions in st and enables the stats command.
func WithStorage(st *storage.Storage) Option {
	return func(sh *Shell) {
		sh.tracker = storage.NewTracker(st)
	}
}

// WithColor turns ANSI colors in the board diagram on or off.
func WithColor(enabled bool) Option {
	return func(sh *Shell) {
		sh.colors = enabled
	}
}

// WithLogger sets the logger for session bookkeeping failures.
func WithLogger(l log.Interface) Option {
	return func(sh *Shell) {
		if l != nil {
			sh.logger = l
		}
	}
}

// New returns a shell over state writing to out.
func New(state *game.State, out io.Writer, opts ...Option) *Shell {
	sh := &Shell{
		state:   state,
		out:     out,
		tracker: storage.NewTracker(nil),
		logger:  log.Log,
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// Run reads commands from in until quit, end of input or ctx is done.
func (sh *Shell) Run(ctx context.Context, in io.Reader) error {
	sh.startSession()
	defer sh.endSession()

	stop := make(chan struct{})
	defer close(stop)
	lines, scanErr := readLines(in, stop)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var raw string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			raw = l
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		quit, err := sh.Exec(line)
		if err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// readLines scans in on its own goroutine so a blocked read cannot hold up
// cancellation. The line channel closes at end of input, after the scan
// error (nil at EOF) has been sent.
func readLines(in io.Reader, stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		errc <- scanner.Err()
		close(lines)
	}()
	return lines, errc
}

// Exec runs one command line and reports whether the shell should stop.
func (sh *Shell) Exec(line string) (bool, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "click":
		return false, sh.withPos(args, sh.handleClick)
	case "select":
		return false, sh.withPos(args, sh.handleSelect)
	case "deselect":
		sh.state.Deselect()
		fmt.Fprintln(sh.out, "cleared")
	case "moves":
		return false, sh.withPos(args, sh.handleMoves)
	case "move":
		return false, sh.handleMove(args)
	case "board", "d":
		fmt.Fprint(sh.out, sh.renderBoard())
	case "turn":
		fmt.Fprintf(sh.out, "%s to move\n", sh.state.Turn())
	case "material":
		fmt.Fprintf(sh.out, "White %d, Black %d\n", sh.state.Material(board.White), sh.state.Material(board.Black))
	case "placement":
		fmt.Fprintln(sh.out, sh.state.Board().Placement())
	case "new":
		sh.state.Reset()
		sh.startSession()
		fmt.Fprintln(sh.out, "new game, White to move")
	case "stats":
		return false, sh.handleStats()
	case "help":
		sh.handleHelp()
	default:
		// A bare square is a click.
		if len(args) == 0 {
			if p, err := board.ParsePos(parts[0]); err == nil {
				return false, sh.handleClick(p)
			}
		}
		return false, fmt.Errorf("unknown command %q", parts[0])
	}
	return false, nil
}

func (sh *Shell) withPos(args []string, fn func(board.Pos) error) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one square", ErrUsage)
	}
	p, err := board.ParsePos(args[0])
	if err != nil {
		return err
	}
	return fn(p)
}

func (sh *Shell) handleClick(p board.Pos) error {
	out, err := sh.state.Click(p)
	if err != nil {
		return err
	}
	switch out.Kind {
	case game.Selected:
		sh.printSelection()
	case game.Moved:
		sh.printMove(out.Move)
	default:
		fmt.Fprintln(sh.out, "cleared")
	}
	return nil
}

func (sh *Shell) handleSelect(p board.Pos) error {
	if err := sh.state.Select(p); err != nil {
		return err
	}
	if _, ok := sh.state.Selected(); !ok {
		fmt.Fprintln(sh.out, "cleared")
		return nil
	}
	sh.printSelection()
	return nil
}

func (sh *Shell) handleMoves(p board.Pos) error {
	dests, err := sh.state.LegalDestinations(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "%s: %s\n", p, formatSet(dests))
	return nil
}

func (sh *Shell) handleMove(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: move <from> <to>", ErrUsage)
	}
	from, err := board.ParsePos(args[0])
	if err != nil {
		return err
	}
	to, err := board.ParsePos(args[1])
	if err != nil {
		return err
	}
	m, err := sh.state.ApplyMove(from, to)
	if err != nil {
		return err
	}
	sh.printMove(m)
	return nil
}

func (sh *Shell) handleStats() error {
	st := sh.tracker.Storage()
	if st == nil {
		return errors.New("no storage attached")
	}
	sum, err := st.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, sum)
	return nil
}

func (sh *Shell) handleHelp() {
	fmt.Fprint(sh.out, `commands:
  <sq> | click <sq>    click a cell (e2 or 6,4)
  select <sq>          select a piece of the side to move
  deselect             clear the selection
  moves <sq>           list destinations of any piece
  move <from> <to>     move a piece
  board | turn | material | placement
  new | stats | quit
`)
}

func (sh *Shell) printSelection() {
	sel, _ := sh.state.Selected()
	piece := sh.state.PieceAt(sel)
	fmt.Fprintf(sh.out, "selected %s %s on %s: %s\n", piece.Team, piece.Kind, sel, formatSet(sh.state.Destinations()))
}

func (sh *Shell) printMove(m game.Move) {
	if err := sh.tracker.Record(m.IsCapture()); err != nil {
		sh.logger.WithError(err).Warn("record move")
	}
	fmt.Fprintf(sh.out, "moved %s, %s to move\n", m, sh.state.Turn())
}

func (sh *Shell) startSession() {
	if err := sh.tracker.Start(); err != nil {
		sh.logger.WithError(err).Warn("start session")
	}
}

func (sh *Shell) endSession() {
	if err := sh.tracker.End(); err != nil {
		sh.logger.WithError(err).Warn("end session")
	}
}

func formatSet(s board.PosSet) string {
	if s.IsEmpty() {
		return "none"
	}
	names := make([]string, 0, s.Len())
	for _, p := range s.Positions() {
		names = append(names, p.String())
	}
	return strings.Join(names, " ")
}

// styles used by renderBoard; each is disabled when colors are off.
type styles struct {
	light, dark, selected, dest *color.Color
}

func (sh *Shell) styles() styles {
	st := styles{
		light:    color.New(color.BgHiWhite, color.FgBlack),
		dark:     color.New(color.BgHiBlack, color.FgHiWhite),
		selected: color.New(color.BgYellow, color.FgBlack, color.Bold),
		dest:     color.New(color.BgGreen, color.FgBlack),
	}
	for _, c := range []*color.Color{st.light, st.dark, st.selected, st.dest} {
		if sh.colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return st
}
