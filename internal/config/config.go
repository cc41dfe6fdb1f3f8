// Package config defines the option surface of the rank-video renderer.
// Defaults come from the environment (RANKVIDEO_*) with built-in fallbacks;
// an optional YAML file overrides defaults and flags override everything.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSeconds      = 15
	DefaultWidth        = 720
	DefaultHeight       = 1280
	DefaultMusicVolume  = 0.22
	DefaultTitleWidth   = 20
	DefaultTitleLines   = 2
	DefaultChannelWidth = 18
	DefaultFrameRate    = 30
)

// Options is the full recognized option set for one render run.
type Options struct {
	LatestJSON   string  `yaml:"latest_json"`
	Background   string  `yaml:"background"`
	Music        string  `yaml:"music"`
	Output       string  `yaml:"output"`
	Seconds      int     `yaml:"seconds"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	MusicVolume  float64 `yaml:"music_volume"`
	Date         string  `yaml:"date"`       // empty: today in UTC+9
	FontFile     string  `yaml:"font_file"`  // empty: auto-discover
	TitleWidth   int     `yaml:"title_width"`
	TitleLines   int     `yaml:"title_lines"`
	ChannelWidth int     `yaml:"channel_width"`
	FrameRate    int     `yaml:"frame_rate"`
	Verbose      bool    `yaml:"verbose"`
}

// Default builds options from RANKVIDEO_* environment variables with
// built-in fallbacks.
func Default() *Options {
	return &Options{
		LatestJSON:   os.Getenv("RANKVIDEO_LATEST_JSON"),
		Background:   os.Getenv("RANKVIDEO_BG"),
		Music:        os.Getenv("RANKVIDEO_BGM"),
		Output:       os.Getenv("RANKVIDEO_OUT"),
		Seconds:      getEnvInt("RANKVIDEO_SECONDS", DefaultSeconds),
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		MusicVolume:  getEnvFloat("RANKVIDEO_BGM_VOLUME", DefaultMusicVolume),
		FontFile:     os.Getenv("RANKVIDEO_FONT"),
		TitleWidth:   DefaultTitleWidth,
		TitleLines:   DefaultTitleLines,
		ChannelWidth: DefaultChannelWidth,
		FrameRate:    DefaultFrameRate,
	}
}

// LoadFile overlays a YAML config file onto the defaults. Keys absent from
// the file keep their default values.
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return opts, nil
}

// Validate rejects unusable option combinations before any work starts.
func (o *Options) Validate() error {
	switch {
	case o.LatestJSON == "":
		return errors.New("latest-json path is required")
	case o.Background == "":
		return errors.New("background video path is required")
	case o.Music == "":
		return errors.New("music path is required")
	case o.Output == "":
		return errors.New("output path is required")
	case o.Seconds < 1:
		return errors.Errorf("seconds must be >= 1, got %d", o.Seconds)
	case o.Width < 2 || o.Height < 2:
		return errors.Errorf("output size %dx%d is not encodable", o.Width, o.Height)
	case o.MusicVolume < 0:
		return errors.Errorf("music volume must be >= 0, got %v", o.MusicVolume)
	case o.TitleWidth < 1:
		return errors.Errorf("title width must be >= 1, got %d", o.TitleWidth)
	case o.TitleLines < 1:
		return errors.Errorf("title lines must be >= 1, got %d", o.TitleLines)
	case o.ChannelWidth < 1:
		return errors.Errorf("channel width must be >= 1, got %d", o.ChannelWidth)
	case o.FrameRate < 1:
		return errors.Errorf("frame rate must be >= 1, got %d", o.FrameRate)
	}
	return nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
