package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/bowling/internal/game"
)

const separator = "|"

var (
	nameStyle     = lipgloss.NewStyle().Width(6).PaddingLeft(1).PaddingRight(1).Align(lipgloss.Right)
	headStyle     = lipgloss.NewStyle().Width(6).Align(lipgloss.Center)
	lastHeadStyle = lipgloss.NewStyle().Width(8).Align(lipgloss.Center)
	cellStyle     = lipgloss.NewStyle().Width(6).PaddingLeft(2)
	lastCellStyle = lipgloss.NewStyle().Width(8).PaddingLeft(2)
)

// Renderer draws the fixed-width score board.
type Renderer struct{}

// Render returns the header plus a marks row and a totals row per sheet.
//
//	| NAME |  01  |  02  | ... |   10   |
//	|  ABC |  X   |  9|/ | ... |  X|X|X |
//	|      |  30  |  50  | ... |  300   |
func (Renderer) Render(sheets []Sheet) string {
	var b strings.Builder
	b.WriteString(header())
	for _, s := range sheets {
		b.WriteString(marksRow(s))
		b.WriteString(totalsRow(s))
	}
	return b.String()
}

func header() string {
	cells := []string{nameStyle.Render("NAME")}
	for i := 1; i <= game.FrameCount; i++ {
		style := headStyle
		if i == game.FrameCount {
			style = lastHeadStyle
		}
		cells = append(cells, style.Render(fmt.Sprintf("%02d", i)))
	}
	return row(cells)
}

func marksRow(s Sheet) string {
	cells := []string{nameStyle.Render(s.Player)}
	for i := 0; i < game.FrameCount; i++ {
		var marks []string
		if i < len(s.Marks) {
			marks = s.Marks[i]
		}
		cells = append(cells, frameCell(i, strings.Join(marks, separator)))
	}
	return row(cells)
}

func totalsRow(s Sheet) string {
	cells := []string{nameStyle.Render("")}
	for i := 0; i < game.FrameCount; i++ {
		text := ""
		if i < len(s.Totals) && s.Totals[i] != nil {
			text = strconv.Itoa(*s.Totals[i])
		}
		cells = append(cells, frameCell(i, text))
	}
	return row(cells)
}

func frameCell(i int, text string) string {
	if i == game.FrameCount-1 {
		return lastCellStyle.Render(text)
	}
	return cellStyle.Render(text)
}

func row(cells []string) string {
	return separator + strings.Join(cells, separator) + separator + "\n"
}
