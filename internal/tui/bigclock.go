package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/circuit/internal/parser"
)

// digitArt holds 5-row ASCII art for the clock glyphs
var digitArt = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders seconds as an ASCII art MM:SS (or HH:MM:SS) clock
func renderBigClock(seconds int, color string) string {
	timeStr := parser.FormatClock(seconds)

	var lines [5]strings.Builder
	for _, char := range timeStr {
		art, ok := digitArt[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ") // Space between digits
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	rendered := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		rendered = append(rendered, clockStyle.Render(lines[i].String()))
	}
	return strings.Join(rendered, "\n")
}
