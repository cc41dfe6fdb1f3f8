package textfmt

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Delimiters the wrapper prefers to break at: ASCII space and the
// punctuation/bracket characters common in Japanese video titles.
var wrapDelimiters = []rune(" 　/|｜・、。,.-–—_#()[]【】「」『』")

func isDelimiter(r rune) bool {
	return slices.Contains(wrapDelimiters, r)
}

// tokenize splits s into delimiter and non-delimiter tokens, retaining the
// delimiters so a committed line keeps its punctuation.
func tokenize(s string) [][]rune {
	var tokens [][]rune
	var cur []rune
	for _, r := range s {
		if isDelimiter(r) {
			if len(cur) > 0 {
				tokens = append(tokens, cur)
				cur = nil
			}
			tokens = append(tokens, []rune{r})
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		tokens = append(tokens, cur)
	}
	return tokens
}

// Wrap splits s into at most maxLines display lines of at most width runes,
// preferring to break at delimiters over mid-word cuts. A single token longer
// than width is hard-cut at exactly width. When committed lines cover less
// than the normalized input, the last line is closed with the ellipsis rune.
// Empty input yields a single empty line. width and maxLines below 1 are
// caller errors.
func Wrap(s string, width, maxLines int) ([]string, error) {
	if width < 1 {
		return nil, errors.Errorf("wrap width must be >= 1, got %d", width)
	}
	if maxLines < 1 {
		return nil, errors.Errorf("wrap max lines must be >= 1, got %d", maxLines)
	}

	s = Normalize(s)
	if s == "" {
		return []string{""}, nil
	}

	tokens := tokenize(s)
	var lines []string
	var cur []rune

	commit := func(x []rune) {
		if t := strings.TrimSpace(string(x)); t != "" {
			lines = append(lines, t)
		}
		cur = nil
	}

	i := 0
	for i < len(tokens) && len(lines) < maxLines {
		tok := tokens[i]

		// Never open a line with a bare delimiter.
		if len(cur) == 0 && len(tok) == 1 && isDelimiter(tok[0]) {
			i++
			continue
		}

		if len(cur)+len(tok) <= width {
			cur = append(cur, tok...)
			i++
			continue
		}

		if strings.TrimSpace(string(cur)) != "" {
			// Current line is full; the token starts the next one.
			commit(cur)
			continue
		}

		// The token alone exceeds width: hard cut and re-feed the
		// remainder so oversized tails are cut again, never committed
		// longer than width.
		rest := tok[width:]
		commit(tok[:width])
		if len(rest) > 0 {
			tokens[i] = rest
		} else {
			i++
		}
	}

	if len(lines) < maxLines && strings.TrimSpace(string(cur)) != "" {
		commit(cur)
	}

	committed := 0
	for _, l := range lines {
		committed += len([]rune(l))
	}
	if committed < len([]rune(s)) && len(lines) > 0 {
		last := []rune(lines[len(lines)-1])
		if len(last) <= 1 {
			lines[len(lines)-1] = Ellipsis
		} else {
			lines[len(lines)-1] = string(last[:len(last)-1]) + Ellipsis
		}
	}

	return lines, nil
}
