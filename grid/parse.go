package grid

import (
	"strings"
	"unicode"
)

// Parse reads the custom maze text format.
//
// Each non-blank line is one row, written either as packed digits ("0101")
// or as whitespace-separated tokens ("0 1 0 1"). Blank lines are dropped and
// surrounding whitespace is ignored. Rows must all have the same length.
//
// Errors are reported as a *MalformedError; Row counts parsed (non-blank)
// rows from zero.
func Parse(text string) (*Grid, error) {
	var values [][]int
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row, err := parseRow(line, len(values))
		if err != nil {
			return nil, err
		}
		values = append(values, row)
	}
	if len(values) == 0 {
		return nil, malformed(-1, -1, ErrEmptyGrid)
	}
	for r, row := range values {
		if len(row) != len(values[0]) {
			return nil, malformed(r, -1, ErrNonRectangular)
		}
	}

	return New(values)
}

// parseRow splits a trimmed line into tokens and converts them to 0/1.
func parseRow(line string, r int) ([]int, error) {
	var tokens []string
	if strings.IndexFunc(line, unicode.IsSpace) >= 0 {
		tokens = strings.Fields(line)
	} else {
		tokens = strings.Split(line, "")
	}
	row := make([]int, len(tokens))
	for c, tok := range tokens {
		switch tok {
		case "0":
			row[c] = 0
		case "1":
			row[c] = 1
		default:
			return nil, malformed(r, c, ErrInvalidCell)
		}
	}
	return row, nil
}
