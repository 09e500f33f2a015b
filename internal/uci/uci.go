// Package uci implements the Universal Chess Interface protocol for
// the fixed-depth engine.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/notnil/chess"

	"github.com/amiit04/ChessBotAI/internal/engine"
)

// Handler runs the UCI main loop. The engine searches to a fixed
// depth, so every "go" completes synchronously; time-control fields
// of the go command are accepted and ignored.
type Handler struct {
	engine *engine.Engine
	game   *chess.Game
	out    io.Writer
}

// New creates a UCI protocol handler around the given engine.
func New(eng *engine.Engine) *Handler {
	return &Handler{
		engine: eng,
		game:   chess.NewGame(),
	}
}

// Run reads commands from in and writes responses to out until "quit"
// or EOF.
func (h *Handler) Run(in io.Reader, out io.Writer) {
	h.out = out
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "uci":
			h.handleUCI()
		case "isready":
			fmt.Fprintln(h.out, "readyok")
		case "ucinewgame":
			h.game = chess.NewGame()
		case "position":
			h.handlePosition(args)
		case "go":
			h.handleGo(args)
		case "setoption":
			h.handleSetOption(args)
		case "d":
			fmt.Fprintln(h.out, h.game.Position().Board().Draw())
			fmt.Fprintln(h.out, h.game.Position().String())
		case "quit":
			return
		}
	}
}

func (h *Handler) handleUCI() {
	fmt.Fprintln(h.out, "id name ChessBotAI")
	fmt.Fprintln(h.out, "id author amiit04")
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "option name Depth type spin default 3 min 1 max 6")
	fmt.Fprintln(h.out, "uciok")
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (h *Handler) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	fenEnd := len(args)
	moveStart := len(args)
	for i, arg := range args {
		if arg == "moves" {
			fenEnd = i
			moveStart = i + 1
			break
		}
	}

	switch args[0] {
	case "startpos":
		h.game = chess.NewGame()
	case "fen":
		fen, err := chess.FEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			fmt.Fprintf(h.out, "info string invalid fen: %v\n", err)
			return
		}
		h.game = chess.NewGame(fen)
	default:
		return
	}

	for _, moveStr := range args[moveStart:] {
		move, err := chess.UCINotation{}.Decode(h.game.Position(), moveStr)
		if err != nil {
			fmt.Fprintf(h.out, "info string invalid move %s: %v\n", moveStr, err)
			return
		}
		if err := h.game.Move(move); err != nil {
			fmt.Fprintf(h.out, "info string illegal move %s: %v\n", moveStr, err)
			return
		}
	}
}

// handleGo runs a search and prints bestmove. Only "depth N" is
// honored; everything else about the go command is ignored.
func (h *Handler) handleGo(args []string) {
	depth := h.engine.Depth()
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "depth" {
			if d, err := strconv.Atoi(args[i+1]); err == nil && d >= 1 {
				depth = d
			}
		}
	}
	if err := h.engine.SetDepth(depth); err != nil {
		fmt.Fprintf(h.out, "info string %v\n", err)
		return
	}

	start := time.Now()
	move, score, err := h.engine.BestMove(h.game.Position())
	if err != nil {
		// Terminal position or no move: nothing to play.
		fmt.Fprintf(h.out, "info string %v\n", err)
		fmt.Fprintln(h.out, "bestmove 0000")
		return
	}

	h.sendInfo(depth, score, h.engine.Nodes(), time.Since(start), move)
	fmt.Fprintf(h.out, "bestmove %s\n", move.String())
}

// sendInfo outputs search info in UCI format. Scores are reported
// from the side to move, as the protocol expects.
func (h *Handler) sendInfo(depth, score int, nodes uint64, elapsed time.Duration, move *chess.Move) {
	if h.game.Position().Turn() == chess.Black {
		score = -score
	}

	parts := []string{fmt.Sprintf("depth %d", depth)}

	switch {
	case score >= engine.MateScore:
		parts = append(parts, fmt.Sprintf("score mate %d", engine.MateIn(score, depth)))
	case score <= -engine.MateScore:
		parts = append(parts, fmt.Sprintf("score mate -%d", engine.MateIn(score, depth)))
	default:
		parts = append(parts, fmt.Sprintf("score cp %d", score))
	}

	parts = append(parts, fmt.Sprintf("nodes %d", nodes))
	parts = append(parts, fmt.Sprintf("time %d", elapsed.Milliseconds()))
	if elapsed > 0 {
		parts = append(parts, fmt.Sprintf("nps %d", uint64(float64(nodes)/elapsed.Seconds())))
	}
	parts = append(parts, fmt.Sprintf("pv %s", move.String()))

	fmt.Fprintf(h.out, "info %s\n", strings.Join(parts, " "))
}

// handleSetOption processes "setoption name <name> value <value>".
func (h *Handler) handleSetOption(args []string) {
	var name, value string
	target := &name
	for _, arg := range args {
		switch arg {
		case "name":
			target = &name
		case "value":
			target = &value
		default:
			if *target != "" {
				*target += " "
			}
			*target += arg
		}
	}

	switch strings.ToLower(name) {
	case "depth":
		d, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintf(h.out, "info string invalid depth %q\n", value)
			return
		}
		if err := h.engine.SetDepth(d); err != nil {
			fmt.Fprintf(h.out, "info string %v\n", err)
		}
	}
}
