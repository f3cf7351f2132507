package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeonlab/pkg/engine/terminal"
	"dungeonlab/pkg/engine/world"
	"dungeonlab/pkg/game/renderer"
	"dungeonlab/pkg/game/state"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	plain bool

	colorWall   color.Style
	colorFloor  color.Style
	colorTitle  color.Style
	colorLabel  color.Style
	colorSubtle color.Style
	colorDenied color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer with colored output
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// NewPlain creates a TUI renderer that writes no escape codes and uses the ASCII tile icons
func NewPlain() *TUIRenderer {
	return &TUIRenderer{plain: true}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	if !t.plain {
		t.colorWall = color.Style{color.FgGray}
		t.colorFloor = color.Style{color.FgYellow}
		t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
		t.colorLabel = color.Style{color.FgBlue}
		t.colorSubtle = color.Style{color.FgGray, color.OpBold}
		t.colorDenied = color.Style{color.FgRed, color.OpBold}
	}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z]+){([^{}]+)}`)
}

// Clear clears the terminal screen. Plain renderers leave the screen alone.
func (t *TUIRenderer) Clear() {
	if t.plain {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleLabel:
		return t.colorLabel.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system:
// GT{key} is translated, ALGO{name} and NUM{value} are highlighted, ERR{text} is shown as a failure.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ALGO":
			val = t.colorTitle.Sprint(operand)
		case "NUM":
			val = t.colorLabel.Sprint(operand)
		case "ERR":
			val = t.colorDenied.Sprint(operand)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// RenderGrid writes the map. Runs of equal tiles share one escape sequence.
func (t *TUIRenderer) RenderGrid(w io.Writer, grid *world.Grid) {
	var sb strings.Builder
	for y := 0; y < grid.Height(); y++ {
		run, runTile := 0, world.Wall
		flush := func() {
			if run == 0 {
				return
			}
			style := renderer.StyleWall
			if runTile == world.Floor {
				style = renderer.StyleFloor
			}
			sb.WriteString(t.StyleText(strings.Repeat(renderer.TileIcon(runTile, t.plain), run), style))
			run = 0
		}
		for x := 0; x < grid.Width(); x++ {
			tile := grid.Cell(x, y)
			if tile != runTile {
				flush()
				runTile = tile
			}
			run++
		}
		flush()
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// RenderFrame renders a header line, the map and the message pane
func (t *TUIRenderer) RenderFrame(w io.Writer, s *state.Session) {
	fmt.Fprint(w, t.FormatText("GT{Algorithm}: ALGO{%s}  GT{Seed}: NUM{%d}  GT{Size}: NUM{%dx%d}\n\n",
		s.Generator.Name(), s.Seed, s.Width, s.Height))

	if s.Grid == nil {
		fmt.Fprintln(w, t.FormatText("ERR{%s}", dynamicGet("No map generated")))
	} else {
		t.RenderGrid(w, s.Grid)
	}

	t.printMessagesPane(w, s)
}

// printMessagesPane prints the session log between two rules as wide as the map or terminal
func (t *TUIRenderer) printMessagesPane(w io.Writer, s *state.Session) {
	width := terminal.GetWidth()
	if s.Grid != nil {
		width = s.Grid.Width()
	}

	label := " " + dynamicGet("Messages") + " "
	labelLen := len([]rune(label))
	sideLen := max((width-labelLen)/2, 1)

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(s.Messages) == 0 {
		fmt.Fprintln(w, t.colorSubtle.Sprint("  ("+dynamicGet("no messages")+")"))
	} else {
		for _, msg := range s.Messages {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}

	fmt.Fprintln(w, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
