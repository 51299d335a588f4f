package climb

import (
	"fmt"
	"strings"
)

// FinaleText is the message shown on the top step
func FinaleText(steps int) string {
	return fmt.Sprintf("Chu Wanning carries Mo Ran %d steps, is a significant moment in the story, "+
		"specifically when Mo Ran is injured and Chu Wanning carries him back to the sect "+
		"after they worked together to mend the heavenly rift.", steps)
}

// WrapText greedily packs words into lines of at most width runes
// Words longer than width are split
func WrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = line[:0]
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}

		switch {
		case len(line) == 0:
			line = append(line, w...)
		case len(line)+1+len(w) <= width:
			line = append(line, ' ')
			line = append(line, w...)
		default:
			lines = append(lines, string(line))
			line = append(line[:0], w...)
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
