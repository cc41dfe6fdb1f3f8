package overlay

import (
	"strings"
	"testing"
)

func sampleBlocks() [3]Block {
	return [3]Block{
		{Rank: "TOP1", TitleLines: []string{"一行目", "二行目"}, Meta: "Ch1  /  123,456回", Primary: true},
		{Rank: "TOP2", TitleLines: []string{"短いタイトル"}, Meta: "Ch2  /  7,890回"},
		{Rank: "TOP3", TitleLines: []string{"Three"}, Meta: "Ch3  /  0回"},
	}
}

func TestComposeTimingWindows(t *testing.T) {
	directives := Compose("header", sampleBlocks(), "cta", 1280, 15)

	cta := directives[len(directives)-1]
	if cta.Visible.Start != 12 || cta.Visible.End != 15 {
		t.Errorf("CTA window = [%v, %v], want [12, 15]", cta.Visible.Start, cta.Visible.End)
	}
	for _, d := range directives[:len(directives)-1] {
		if d.Visible.Start != 0 || d.Visible.End != 11.95 {
			t.Errorf("main window for %q = [%v, %v], want [0, 11.95]", d.Text, d.Visible.Start, d.Visible.End)
		}
	}
}

func TestComposeShortClipClampsCTA(t *testing.T) {
	directives := Compose("h", sampleBlocks(), "cta", 1280, 3)
	cta := directives[len(directives)-1]
	if cta.Visible.Start != 1 || cta.Visible.End != 3 {
		t.Errorf("CTA window = [%v, %v], want [1, 3]", cta.Visible.Start, cta.Visible.End)
	}
}

func TestComposeOrderAndStyling(t *testing.T) {
	directives := Compose("2026/01/17 ランキング", sampleBlocks(), "チェック！", 1280, 15)

	// header + 3*(rank, title, meta) + footer + cta
	if len(directives) != 12 {
		t.Fatalf("composed %d directives, want 12", len(directives))
	}

	rank1, rank2, rank3 := directives[1], directives[4], directives[7]
	if rank1.Color != "FFD54A" || rank2.Color != "D7D7D7" || rank3.Color != "FFFFFF" {
		t.Errorf("rank colors = %s/%s/%s, want gold/silver/white", rank1.Color, rank2.Color, rank3.Color)
	}
	if rank1.BorderWidth <= rank2.BorderWidth {
		t.Errorf("rank 1 border %d should exceed rank 2 border %d", rank1.BorderWidth, rank2.BorderWidth)
	}
	if rank1.ShadowAlpha <= rank2.ShadowAlpha || rank1.ShadowX <= rank2.ShadowX {
		t.Error("rank 1 should carry the stronger shadow")
	}

	title1 := directives[2]
	if title1.Text != "一行目\n二行目" {
		t.Errorf("title text = %q, want embedded line break", title1.Text)
	}

	for _, d := range directives {
		if d.BorderWidth <= 0 {
			t.Errorf("directive %q has no border", d.Text)
		}
		if d.ShadowAlpha <= 0 || d.ShadowAlpha > 1 {
			t.Errorf("directive %q shadow alpha %v out of range", d.Text, d.ShadowAlpha)
		}
		if d.X != "(w-text_w)/2" {
			t.Errorf("directive %q not centered: x=%q", d.Text, d.X)
		}
	}

	footer := directives[10]
	if footer.Y != 1280-120 {
		t.Errorf("footer y = %d, want %d", footer.Y, 1280-120)
	}
}

func TestEscapeText(t *testing.T) {
	cases := []struct{ in, want string }{
		{`it's 50%: ok`, `it\'s 50\%\: ok`},
		{`back\slash`, `back\\slash`},
		{"a\r\nb", "a\nb"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := escapeText(c.in); got != c.want {
			t.Errorf("escapeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDrawtextSerialization(t *testing.T) {
	d := Directive{
		Text: "一行目\n二行目", X: "(w-text_w)/2", Y: 300, FontSize: 36,
		Color: "FFFFFF", BorderWidth: 4, BorderAlpha: 0.90,
		ShadowAlpha: 0.45, ShadowX: 2, ShadowY: 2,
		Visible: Window{Start: 0, End: 11.95},
	}

	got := d.drawtext("")
	for _, want := range []string{
		`text='一行目\n二行目'`,
		"x=(w-text_w)/2",
		"y=300",
		"fontsize=36",
		"fontcolor=FFFFFF",
		"borderw=4",
		"bordercolor=black@0.9",
		"shadowcolor=black@0.45",
		"shadowx=2",
		"enable='between(t,0,11.95)'",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("drawtext %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "fontfile") {
		t.Errorf("drawtext %q should omit fontfile when unset", got)
	}
}

func TestDrawtextFontFileQuoting(t *testing.T) {
	d := Directive{Text: "x", X: "0", Color: "FFFFFF", Visible: Window{0, 1}}
	got := d.drawtext(`C:\Windows\Fonts\meiryob.ttc`)
	if !strings.Contains(got, `fontfile='C\:\\Windows\\Fonts\\meiryob.ttc':`) {
		t.Errorf("fontfile not quoted for a Windows path: %q", got)
	}
}

func TestFilterChain(t *testing.T) {
	directives := Compose("h", sampleBlocks(), "cta", 1280, 15)
	chain := FilterChain(720, 1280, "", directives)

	if !strings.HasPrefix(chain, "scale=720:1280:force_original_aspect_ratio=increase,crop=720:1280,eq=") {
		t.Errorf("chain should start with background conditioning: %q", chain[:80])
	}
	if got := strings.Count(chain, "drawtext="); got != len(directives) {
		t.Errorf("chain has %d drawtext filters, want %d", got, len(directives))
	}
}
