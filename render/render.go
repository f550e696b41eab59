package render

import (
	"fmt"
	"io"
	"strings"

	"checkers/game"
	"checkers/gamemaster"
	"checkers/searcher"

	"github.com/muesli/termenv"
)

const barWidth = 30

// Renderer draws controller snapshots to a terminal. It only reads the
// snapshots it is given.
type Renderer struct {
	out     *termenv.Output
	clear   bool
	profile termenv.Profile
	forced  bool
}

type Option func(r *Renderer)

// WithColor forces a color profile. Without it the profile is detected
// from the writer.
func WithColor(color bool) Option {
	return func(r *Renderer) {
		r.forced = true
		r.profile = termenv.Ascii
		if color {
			r.profile = termenv.ANSI256
		}
	}
}

// WithClear clears the screen before every frame.
func WithClear() Option {
	return func(r *Renderer) {
		r.clear = true
	}
}

func New(w io.Writer, options ...Option) *Renderer {
	r := &Renderer{}
	for _, option := range options {
		option(r)
	}
	var outputOptions []termenv.OutputOption
	if r.forced {
		outputOptions = append(outputOptions, termenv.WithProfile(r.profile))
	}
	r.out = termenv.NewOutput(w, outputOptions...)
	return r
}

// Frame draws the board, the selection and the current estimate. It matches
// engine.FrameFunc.
func (r *Renderer) Frame(view gamemaster.View, tally searcher.Tally, running bool) {
	if r.clear {
		r.out.ClearScreen()
	}
	fmt.Fprint(r.out, r.Board(view))
	fmt.Fprint(r.out, r.Status(view, tally, running))
}

// Board renders the grid with row and column numbers. The selected piece is
// marked with '*' and its legal destinations with '+'.
func (r *Renderer) Board(view gamemaster.View) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < game.Cols; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	pos := view.State.Position
	for row := 0; row < game.Rows; row++ {
		fmt.Fprintf(&sb, " %d ", row)
		for col := 0; col < game.Cols; col++ {
			sq := game.Square{Row: row, Col: col}
			piece, _ := pos.Get(sq)
			sb.WriteByte(' ')
			sb.WriteString(r.cell(view, sq, piece))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) cell(view gamemaster.View, sq game.Square, piece game.Piece) string {
	text := string(piece.Rune())
	style := r.out.String(text)
	switch {
	case view.HasSelection() && sq == view.Selected:
		return r.out.String("*").Reverse().Bold().String()
	case view.HasSelection() && view.Moves.Contains(sq):
		if view.Moves[sq].IsCapture() {
			return r.out.String("+").Foreground(r.out.Color("1")).Bold().String()
		}
		return r.out.String("+").Foreground(r.out.Color("2")).Bold().String()
	case piece.Side == game.SideA:
		style = style.Foreground(r.out.Color("9"))
	case piece.Side == game.SideB:
		style = style.Foreground(r.out.Color("12"))
	case !sq.Playable():
		return " "
	default:
		style = style.Faint()
	}
	if piece.King {
		style = style.Bold()
	}
	return style.String()
}

// Status renders the turn, the game result and the estimate. A tally for an
// earlier position is labelled stale rather than shown as current.
func (r *Renderer) Status(view gamemaster.View, tally searcher.Tally, running bool) string {
	var sb strings.Builder
	state := view.State
	pos := state.Position

	fmt.Fprintf(&sb, "\nply %d  A %d (%d kings)  B %d (%d kings)  material %+.1f\n",
		state.Ply,
		pos.Remaining(game.SideA), pos.Kings(game.SideA),
		pos.Remaining(game.SideB), pos.Kings(game.SideB),
		game.Evaluate(&pos))

	switch {
	case view.GameOver():
		fmt.Fprintf(&sb, "%s\n", r.out.String(fmt.Sprintf("game over, %s wins", view.Winner)).Bold())
	case view.HasSelection():
		fmt.Fprintf(&sb, "%s to move, %s selected, %d destinations\n", state.Turn, view.Selected, len(view.Moves))
	default:
		fmt.Fprintf(&sb, "%s to move, select a piece\n", state.Turn)
	}

	if tally.Total == 0 && !running {
		sb.WriteString("no estimate\n")
		return sb.String()
	}

	a, b, draw := tally.Probabilities()
	label := "estimate"
	if !tally.For(state) {
		label = "stale estimate"
	}
	fmt.Fprintf(&sb, "%s %d/%d", label, tally.Total, tally.Simulations)
	if running {
		sb.WriteString(" running")
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "A    %s %5.1f%%\n", r.bar(a, "9"), 100*a)
	fmt.Fprintf(&sb, "B    %s %5.1f%%\n", r.bar(b, "12"), 100*b)
	fmt.Fprintf(&sb, "draw %s %5.1f%%\n", r.bar(draw, "8"), 100*draw)
	return sb.String()
}

func (r *Renderer) bar(share float64, color string) string {
	filled := int(share*barWidth + 0.5)
	filled = min(max(filled, 0), barWidth)
	full := r.out.String(strings.Repeat("#", filled)).Foreground(r.out.Color(color)).String()
	return full + strings.Repeat(".", barWidth-filled)
}
