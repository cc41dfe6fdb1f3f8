// Package overlay turns ranked display blocks into declarative, timed
// drawtext directives and serializes them into an ffmpeg filter chain.
// Keeping the directive list structured keeps positions, timing, and styling
// testable apart from ffmpeg's textual mini-syntax.
package overlay

import (
	"fmt"
	"strconv"
	"strings"
)

// Window is the [Start, End] interval in seconds a directive is visible.
type Window struct {
	Start float64
	End   float64
}

// Directive is one styled, positioned, time-windowed text element. Every
// directive carries a border and a drop shadow so text stays legible over an
// arbitrary video background.
type Directive struct {
	Text        string // may contain embedded line breaks
	X           string // position expression, e.g. "(w-text_w)/2"
	Y           int
	FontSize    int
	Color       string // RRGGBB
	BorderWidth int
	BorderAlpha float64
	ShadowAlpha float64
	ShadowX     int
	ShadowY     int
	Visible     Window
}

// escapeText escapes the characters that are structural in drawtext payloads
// and normalizes line endings to bare LF.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, `:`, `\:`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// quoteFontFile quotes a font path for use as a drawtext fontfile value.
// Windows paths carry both backslashes and a drive colon.
func quoteFontFile(path string) string {
	v := strings.ReplaceAll(path, `\`, `\\`)
	v = strings.ReplaceAll(v, `:`, `\:`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// payload renders directive text as a single drawtext value, representing
// embedded line breaks with the literal \n marker.
func payload(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = escapeText(p)
	}
	return strings.Join(parts, `\n`)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// drawtext serializes one directive. An empty fontFile omits the fontfile
// key so ffmpeg falls back to its default font.
func (d Directive) drawtext(fontFile string) string {
	fontPart := ""
	if fontFile != "" {
		fontPart = "fontfile=" + quoteFontFile(fontFile) + ":"
	}
	enable := fmt.Sprintf("between(t,%s,%s)", formatNum(d.Visible.Start), formatNum(d.Visible.End))
	return fmt.Sprintf(
		"drawtext=%stext='%s':x=%s:y=%d:fontsize=%d:fontcolor=%s:borderw=%d:bordercolor=black@%s:shadowcolor=black@%s:shadowx=%d:shadowy=%d:enable='%s'",
		fontPart, payload(d.Text), d.X, d.Y, d.FontSize, d.Color,
		d.BorderWidth, formatNum(d.BorderAlpha),
		formatNum(d.ShadowAlpha), d.ShadowX, d.ShadowY,
		enable,
	)
}

// FilterChain assembles the complete -vf value: background conditioning
// followed by every directive, joined into one pipeline.
func FilterChain(width, height int, fontFile string, directives []Directive) string {
	filters := make([]string, 0, len(directives)+2)
	filters = append(filters,
		fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d", width, height, width, height),
		"eq=brightness=-0.02:contrast=1.10:saturation=1.02",
	)
	for _, d := range directives {
		filters = append(filters, d.drawtext(fontFile))
	}
	return strings.Join(filters, ",")
}
