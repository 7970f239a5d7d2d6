package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	chesserr "github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/rules"
)

const commandHelp = `  e2e4, e7e8q   play a move (promotion defaults to queen)
  moves <sq>    list the destinations of the piece on <sq>
  undo [n]      take back n plies (default 2: your move and the reply)
  restart       start a new game
  board         show the board
  fen           show the position in FEN
  history       list the moves played
  perft <n>     count move-tree leaves to depth n
  help          show this help
  quit          leave
`

// session runs the interactive loop for one human player.
type session struct {
	eng   *rules.Engine
	cfg   *config.Config
	human chess.Colour
	out   io.Writer
	sleep func(time.Duration)
}

func newSession(eng *rules.Engine, cfg *config.Config, out io.Writer) *session {
	return &session{
		eng:   eng,
		cfg:   cfg,
		human: cfg.Game.HumanSide(),
		out:   out,
		sleep: time.Sleep,
	}
}

// run reads commands until quit or end of input.
func (s *session) run(in io.Reader) error {
	s.showBoard()
	s.engineTurn()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if quit := s.handle(scanner.Text()); quit {
			return nil
		}
	}
}

// handle executes one command line and reports whether to stop.
func (s *session) handle(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprint(s.out, commandHelp)
	case "board":
		s.showBoard()
	case "fen":
		fmt.Fprintln(s.out, s.eng.FEN())
	case "history":
		s.showHistory()
	case "moves":
		s.showMoves(fields[1:])
	case "undo":
		s.undo(fields[1:])
	case "restart":
		s.eng.Restart()
		fmt.Fprintln(s.out, "New game.")
		s.showBoard()
		s.engineTurn()
	case "perft":
		s.perft(fields[1:])
	default:
		s.move(fields[0])
	}
	return false
}

func (s *session) move(text string) {
	m, ok := chess.ParseMove(text)
	if !ok {
		fmt.Fprintf(s.out, "Unknown command %q. Type help for a list.\n", text)
		return
	}
	if pos := s.eng.Snapshot(); pos.ToMove != s.human && !pos.Status.IsTerminal() {
		fmt.Fprintln(s.out, "It is not your turn.")
		return
	}
	if err := s.eng.ApplyMove(m.From, m.To, m.Promotion); err != nil {
		s.reportError(err)
		return
	}
	s.showBoard()
	s.engineTurn()
}

// engineTurn plays the engine's reply when it is the engine's move.
func (s *session) engineTurn() {
	pos := s.eng.Snapshot()
	if pos.Status.IsTerminal() {
		fmt.Fprintln(s.out, gameOverMessage(pos.Status, s.human))
		return
	}
	if pos.ToMove == s.human {
		return
	}

	s.sleep(s.cfg.Game.EngineDelay)
	m, err := s.eng.ApplyEngineMove()
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintf(s.out, "Engine plays %s\n", m)
	s.showBoard()
	if pos := s.eng.Snapshot(); pos.Status.IsTerminal() {
		fmt.Fprintln(s.out, gameOverMessage(pos.Status, s.human))
	}
}

func (s *session) showBoard() {
	pos := s.eng.Snapshot()
	renderBoard(s.out, &pos, s.cfg.Display)
}

func (s *session) showHistory() {
	moves := s.eng.History()
	if len(moves) == 0 {
		fmt.Fprintln(s.out, "No moves yet.")
		return
	}
	var sb strings.Builder
	for i, m := range moves {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d.", i/2+1)
		}
		sb.WriteByte(' ')
		sb.WriteString(m.String())
	}
	fmt.Fprintln(s.out, sb.String())
}

func (s *session) showMoves(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: moves <square>")
		return
	}
	sq, ok := chess.ParseSquare(args[0])
	if !ok {
		s.reportError(fmt.Errorf("%w: %q", chesserr.ErrInvalidSquare, args[0]))
		return
	}
	dests := s.eng.LegalMovesFrom(sq)
	if len(dests) == 0 {
		fmt.Fprintf(s.out, "No legal moves from %s.\n", sq)
		return
	}
	labels := make([]string, len(dests))
	for i, d := range dests {
		labels[i] = d.String()
	}
	fmt.Fprintf(s.out, "%s: %s\n", sq, strings.Join(labels, " "))
}

func (s *session) undo(args []string) {
	plies := 2
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(s.out, "Usage: undo [plies]")
			return
		}
		plies = n
	}
	if err := s.eng.Undo(plies); err != nil {
		s.reportError(err)
		return
	}
	s.showBoard()
	s.engineTurn()
}

func (s *session) perft(args []string) {
	depth := 0
	if len(args) == 1 {
		depth, _ = strconv.Atoi(args[0])
	}
	if depth < 1 {
		fmt.Fprintln(s.out, "Usage: perft <depth>")
		return
	}
	pos := s.eng.Snapshot()
	results, total := engine.Divide(&pos, depth, s.cfg.Perft.Workers)
	for _, r := range results {
		fmt.Fprintf(s.out, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintf(s.out, "Nodes searched: %d\n", total)
}

// reportError prints a failed command in player-facing terms.
func (s *session) reportError(err error) {
	switch {
	case errors.Is(err, chesserr.ErrGameOver):
		fmt.Fprintln(s.out, "The game is over. Type restart or undo.")
	case errors.Is(err, chesserr.ErrIllegalMove):
		fmt.Fprintln(s.out, "Illegal move.")
	case errors.Is(err, chesserr.ErrInsufficientHistory):
		fmt.Fprintln(s.out, "Nothing to undo.")
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
