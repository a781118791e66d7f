package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
)

const minCellWidth = 6

// tileColors maps tile values to ANSI 256 background colors.
var tileColors = map[int]string{
	2:    "230",
	4:    "229",
	8:    "215",
	16:   "209",
	32:   "203",
	64:   "196",
	128:  "228",
	256:  "227",
	512:  "226",
	1024: "220",
	2048: "214",
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 2)
	lostStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Padding(0, 2)
	hotTileBg   = lipgloss.Color("208")
	darkTileFg  = lipgloss.Color("236")
	lightTileFg = lipgloss.Color("231")
)

// tileStyle returns the style for a tile value.
func tileStyle(value, width int) lipgloss.Style {
	base := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true)
	if value == 0 {
		return emptyStyle.Width(width).Align(lipgloss.Center)
	}

	bg, ok := tileColors[value]
	if !ok {
		return base.Background(hotTileBg).Foreground(lightTileFg)
	}
	fg := darkTileFg
	if value >= 8 {
		fg = lightTileFg
	}
	return base.Background(lipgloss.Color(bg)).Foreground(fg)
}

// cellWidth fits the widest value the game can reasonably show.
func cellWidth(target, maxTile int) int {
	widest := max(target, maxTile)
	return max(len(strconv.Itoa(widest))+2, minCellWidth)
}

// RenderBoard draws the grid as a bordered block of colored tiles.
func RenderBoard(g grid.Grid, width int, spawned *grid.Cell) string {
	rows := make([]string, 0, len(g))
	for r, row := range g {
		cells := make([]string, 0, len(row))
		for c, v := range row {
			label := "·"
			if v != 0 {
				label = strconv.Itoa(v)
			}
			style := tileStyle(v, width)
			if spawned != nil && spawned.Row == r && spawned.Col == c {
				style = style.Underline(true)
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderHUD draws the title line and the running maximum.
func RenderHUD(out session.Outcome, target int) string {
	title := titleStyle.Render("2 0 4 8")
	info := hudStyle.Render(fmt.Sprintf("Max: %d   Target: %d   Turn: %d", out.Max, target, out.Turn))
	return lipgloss.JoinVertical(lipgloss.Center, title, info)
}

// RenderBanner returns the status banner, or an empty string while playing.
func RenderBanner(out session.Outcome, target int) string {
	switch out.Status {
	case session.Lost:
		return lostStyle.Render(fmt.Sprintf("GAME OVER  max tile %d  press n for a new game", out.Max))
	case session.Won:
		return wonStyle.Render(fmt.Sprintf("YOU REACHED %d!  keep going", target))
	}
	return ""
}

// RenderPlain draws the grid without styling, used by the headless commands.
func RenderPlain(g grid.Grid) string {
	width := 1
	for _, row := range g {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}

	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			label := "."
			if v != 0 {
				label = strconv.Itoa(v)
			}
			fmt.Fprintf(&sb, "%*s", width, label)
		}
	}
	return sb.String()
}
