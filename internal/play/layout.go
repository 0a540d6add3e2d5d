package play

import (
	"fmt"
	"strings"
)

// Celebration grid dimensions: 6 rows of 10 tiles.
const (
	CelebrationRows = 6
	CelebrationCols = 10
	CelebrationSize = CelebrationRows * CelebrationCols
)

// DefaultCelebrationText is shown when none is configured.
const DefaultCelebrationText = "I LOVE YOU WILL YOU MARRY ME"

// Layout word-wraps text onto the celebration grid, centring every line and
// the block of lines. Widths count runes, so each character is one tile. It
// returns CelebrationSize tiles in row-major order; blank tiles are "".
func Layout(text string) ([]string, error) {
	ws := strings.Fields(strings.ToUpper(text))
	if len(ws) == 0 {
		return nil, fmt.Errorf("play: celebration text is empty")
	}

	var lines [][]rune
	var cur []rune
	for _, w := range ws {
		rw := []rune(w)
		if len(rw) > CelebrationCols {
			return nil, fmt.Errorf("play: word %q longer than %d tiles", w, CelebrationCols)
		}
		switch {
		case len(cur) == 0:
			cur = rw
		case len(cur)+1+len(rw) <= CelebrationCols:
			cur = append(append(cur, ' '), rw...)
		default:
			lines = append(lines, cur)
			cur = rw
		}
	}
	lines = append(lines, cur)
	if len(lines) > CelebrationRows {
		return nil, fmt.Errorf("play: celebration text needs %d rows, have %d", len(lines), CelebrationRows)
	}

	tiles := make([]string, CelebrationSize)
	top := (CelebrationRows - len(lines)) / 2
	for i, line := range lines {
		left := (CelebrationCols - len(line)) / 2
		for j, r := range line {
			if r != ' ' {
				tiles[(top+i)*CelebrationCols+left+j] = string(r)
			}
		}
	}
	return tiles, nil
}
