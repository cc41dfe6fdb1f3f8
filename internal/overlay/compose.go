package overlay

import "strings"

// Block is the display unit for one ranked item.
type Block struct {
	Rank       string
	TitleLines []string
	Meta       string
	Primary    bool // rank 1, drives the stronger emphasis styling
}

const centerX = "(w-text_w)/2"

// Fixed template geometry for the 720x1280 family: header, three
// rank/title/meta triples packed tightly, footer, centered CTA.
const (
	fsHeader = 30
	fsRank   = 42
	fsTitle  = 36
	fsMeta   = 30
	fsFooter = 26
	fsCTA    = 44

	yHeader = 105
	yCTA    = 600

	footerText = "shorts-ranking.com"
)

var blockRows = [3]struct{ rank, title, meta int }{
	{240, 300, 360},
	{500, 560, 620},
	{800, 860, 920},
}

// rankColors is a fixed lookup: gold, silver, white.
var rankColors = [3]string{"FFD54A", "D7D7D7", "FFFFFF"}

// Compose lays out the full template as an ordered directive list. The CTA
// owns the final three seconds (clamped to start no earlier than t=1); the
// main content ends 0.05s before the CTA window to avoid overlap.
func Compose(header string, blocks [3]Block, cta string, height, seconds int) []Directive {
	ctaStart := float64(seconds - 3)
	if ctaStart < 1 {
		ctaStart = 1
	}
	main := Window{Start: 0, End: ctaStart - 0.05}
	ctaWindow := Window{Start: ctaStart, End: float64(seconds)}

	directives := make([]Directive, 0, 3*len(blocks)+3)

	directives = append(directives, Directive{
		Text: header, X: centerX, Y: yHeader, FontSize: fsHeader,
		Color: "FFFFFF", BorderWidth: 5, BorderAlpha: 0.92,
		ShadowAlpha: 0.50, ShadowX: 2, ShadowY: 2,
		Visible: main,
	})

	for i, b := range blocks {
		rows := blockRows[i]

		rankBorder, titleBorder := 5, 4
		rankShadowAlpha, rankShadowOff := 0.45, 2
		if b.Primary {
			rankBorder, titleBorder = 6, 5
			rankShadowAlpha, rankShadowOff = 0.55, 3
		}

		directives = append(directives, Directive{
			Text: b.Rank, X: centerX, Y: rows.rank, FontSize: fsRank,
			Color: rankColors[i], BorderWidth: rankBorder, BorderAlpha: 0.92,
			ShadowAlpha: rankShadowAlpha, ShadowX: rankShadowOff, ShadowY: rankShadowOff,
			Visible: main,
		})

		directives = append(directives, Directive{
			Text: strings.Join(b.TitleLines, "\n"), X: centerX, Y: rows.title, FontSize: fsTitle,
			Color: "FFFFFF", BorderWidth: titleBorder, BorderAlpha: 0.90,
			ShadowAlpha: 0.45, ShadowX: 2, ShadowY: 2,
			Visible: main,
		})

		directives = append(directives, Directive{
			Text: b.Meta, X: centerX, Y: rows.meta, FontSize: fsMeta,
			Color: "FFFFFF", BorderWidth: 4, BorderAlpha: 0.88,
			ShadowAlpha: 0.40, ShadowX: 2, ShadowY: 2,
			Visible: main,
		})
	}

	directives = append(directives, Directive{
		Text: footerText, X: centerX, Y: height - 120, FontSize: fsFooter,
		Color: "FFFFFF", BorderWidth: 3, BorderAlpha: 0.70,
		ShadowAlpha: 0.30, ShadowX: 1, ShadowY: 1,
		Visible: main,
	})

	directives = append(directives, Directive{
		Text: cta, X: centerX, Y: yCTA, FontSize: fsCTA,
		Color: "FFFFFF", BorderWidth: 6, BorderAlpha: 0.92,
		ShadowAlpha: 0.55, ShadowX: 3, ShadowY: 3,
		Visible: ctaWindow,
	})

	return directives
}
