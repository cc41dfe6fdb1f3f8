package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shorts-ranking/rank-video/internal/config"
	"github.com/shorts-ranking/rank-video/pkg/rankvideo"
)

var (
	rootCmd = &cobra.Command{
		Use:   "rank-video",
		Short: "A renderer for Top 3 short-video ranking clips",
		Long: `rank-video turns a ranking snapshot (latest.json) into a short vertical
video: the top 3 entries are overlaid as styled text on a looping background
clip with background music.

Example:
  rank-video render --latest-json data/latest.json --bg assets/bg.mp4 \
    --bgm assets/bgm.mp3 --out out/rank.mp4`,
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render the ranking video from a snapshot file",
		Long: `Render reads the ranking snapshot (falling back to its .bak/.tmp copies
while the producer is writing), derives the three display blocks, and invokes
ffmpeg to produce the final clip.

Example:
  rank-video render --latest-json data/latest.json --bg bg.mp4 --bgm bgm.mp3 \
    --out out/rank.mp4 --seconds 15 --date 2026/01/17`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := collectOptions(cmd)
			if err != nil {
				return err
			}
			return rankvideo.Make(opts, newLogger(opts.Verbose))
		},
	}
)

// collectOptions layers the option sources: built-in/env defaults, then the
// YAML config file when given, then any flag the user explicitly set.
func collectOptions(cmd *cobra.Command) (*config.Options, error) {
	opts := config.Default()

	if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
		loaded, err := config.LoadFile(cfgPath)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("latest-json") {
		opts.LatestJSON, _ = flags.GetString("latest-json")
	}
	if flags.Changed("bg") {
		opts.Background, _ = flags.GetString("bg")
	}
	if flags.Changed("bgm") {
		opts.Music, _ = flags.GetString("bgm")
	}
	if flags.Changed("out") {
		opts.Output, _ = flags.GetString("out")
	}
	if flags.Changed("seconds") {
		opts.Seconds, _ = flags.GetInt("seconds")
	}
	if flags.Changed("width") {
		opts.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		opts.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("bgm-volume") {
		opts.MusicVolume, _ = flags.GetFloat64("bgm-volume")
	}
	if flags.Changed("date") {
		opts.Date, _ = flags.GetString("date")
	}
	if flags.Changed("font") {
		opts.FontFile, _ = flags.GetString("font")
	}
	if flags.Changed("title-width") {
		opts.TitleWidth, _ = flags.GetInt("title-width")
	}
	if flags.Changed("title-lines") {
		opts.TitleLines, _ = flags.GetInt("title-lines")
	}
	if flags.Changed("channel-width") {
		opts.ChannelWidth, _ = flags.GetInt("channel-width")
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		opts.Verbose = true
	}

	return opts, nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func init() {
	renderCmd.Flags().String("config", "", "YAML config file with option defaults")
	renderCmd.Flags().String("latest-json", "", "Ranking snapshot JSON file")
	renderCmd.Flags().String("bg", "", "Background video file (looped)")
	renderCmd.Flags().String("bgm", "", "Background music file (looped)")
	renderCmd.Flags().StringP("out", "o", "", "Output video path")
	renderCmd.Flags().Int("seconds", config.DefaultSeconds, "Clip duration in seconds")
	renderCmd.Flags().Int("width", config.DefaultWidth, "Output width")
	renderCmd.Flags().Int("height", config.DefaultHeight, "Output height")
	renderCmd.Flags().Float64("bgm-volume", config.DefaultMusicVolume, "Music volume factor")
	renderCmd.Flags().String("date", "", "Display date (default: today in JST, e.g. 2026/01/17)")
	renderCmd.Flags().String("font", "", "Font file (default: auto-detect)")
	renderCmd.Flags().Int("title-width", config.DefaultTitleWidth, "Max characters per title line")
	renderCmd.Flags().Int("title-lines", config.DefaultTitleLines, "Max title lines")
	renderCmd.Flags().Int("channel-width", config.DefaultChannelWidth, "Max characters of the channel name")
	renderCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(renderCmd)
}

func main() {
	// Optional .env for the RANKVIDEO_* defaults; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
