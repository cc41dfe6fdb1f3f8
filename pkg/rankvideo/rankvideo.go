// Package rankvideo produces a short vertical "Top 3" ranking video: ranked
// entries from a snapshot file are laid out as styled text overlays over a
// looping background clip with background music.
package rankvideo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shorts-ranking/rank-video/internal/clock"
	"github.com/shorts-ranking/rank-video/internal/config"
	ffmpegWrap "github.com/shorts-ranking/rank-video/internal/ffmpeg"
	"github.com/shorts-ranking/rank-video/internal/fontfile"
	"github.com/shorts-ranking/rank-video/internal/overlay"
	"github.com/shorts-ranking/rank-video/internal/snapshot"
)

const (
	headerSuffix = " ショート動画再生数ランキング"
	ctaText      = "概要欄からランキングをチェック！"
)

// MissingInputError means a required input file does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return "required input not found: " + e.Path
}

// Make runs one full render: load the snapshot, derive the three display
// blocks, compose the overlay directives, and invoke the encoder. Every
// failure is terminal; no partial output is retained.
func Make(opts *config.Options, log zerolog.Logger) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	for _, p := range []string{opts.LatestJSON, opts.Background, opts.Music} {
		if _, err := os.Stat(p); err != nil {
			return &MissingInputError{Path: p}
		}
	}

	if dir := filepath.Dir(opts.Output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %v", dir, err)
		}
	}

	loader := snapshot.NewLoader(log)
	snap, err := loader.Load(opts.LatestJSON)
	if err != nil {
		return err
	}

	blocks, err := buildBlocks(snap.Top3(), opts.TitleWidth, opts.TitleLines, opts.ChannelWidth)
	if err != nil {
		return err
	}

	date := strings.TrimSpace(opts.Date)
	if date == "" {
		date = clock.JST().Today()
	}
	header := date + headerSuffix

	font := strings.TrimSpace(opts.FontFile)
	if font == "" {
		font, _ = fontfile.Resolve()
	}

	directives := overlay.Compose(header, blocks, ctaText, opts.Height, opts.Seconds)
	chain := overlay.FilterChain(opts.Width, opts.Height, font, directives)

	printSummary(snap.UpdatedAt, blocks, font)

	renderer := ffmpegWrap.NewRenderer(log, opts.Verbose)
	if opts.Verbose {
		if meta, err := renderer.Probe(opts.Background); err == nil {
			log.Debug().
				Float64("duration", meta.Duration).
				Int("width", meta.Width).
				Int("height", meta.Height).
				Str("codec", meta.Codec).
				Msg("background clip")
		}
	}

	job := &ffmpegWrap.Job{
		Background:  opts.Background,
		Music:       opts.Music,
		Output:      opts.Output,
		Seconds:     opts.Seconds,
		FrameRate:   opts.FrameRate,
		MusicVolume: opts.MusicVolume,
		FilterChain: chain,
	}
	if err := renderer.Render(job); err != nil {
		return err
	}

	fmt.Printf("OK: wrote %s\n", opts.Output)
	return nil
}

func printSummary(updatedAt string, blocks [3]overlay.Block, font string) {
	fmt.Println("=== INFO ===")
	fmt.Printf("latest.json updated_at: %s\n", updatedAt)
	fmt.Println("TOP3:")
	for _, b := range blocks {
		title := strings.Join(b.TitleLines, " / ")
		fmt.Printf("  %s  %s  |  %s\n", b.Rank, title, b.Meta)
	}
	if font == "" {
		font = "(auto)"
	}
	fmt.Printf("fontfile: %s\n", font)
	fmt.Println("============")
}
