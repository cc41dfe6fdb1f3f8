package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	opts := Default()
	if opts.Seconds != 15 || opts.Width != 720 || opts.Height != 1280 {
		t.Errorf("defaults = %ds %dx%d, want 15s 720x1280", opts.Seconds, opts.Width, opts.Height)
	}
	if opts.MusicVolume != 0.22 {
		t.Errorf("default volume = %v, want 0.22", opts.MusicVolume)
	}
	if opts.TitleWidth != 20 || opts.TitleLines != 2 || opts.ChannelWidth != 18 {
		t.Errorf("text defaults = %d/%d/%d, want 20/2/18", opts.TitleWidth, opts.TitleLines, opts.ChannelWidth)
	}
}

func TestDefaultEnvOverride(t *testing.T) {
	t.Setenv("RANKVIDEO_SECONDS", "30")
	t.Setenv("RANKVIDEO_FONT", "/tmp/font.ttc")

	opts := Default()
	if opts.Seconds != 30 {
		t.Errorf("Seconds = %d, want env override 30", opts.Seconds)
	}
	if opts.FontFile != "/tmp/font.ttc" {
		t.Errorf("FontFile = %q, want env override", opts.FontFile)
	}
}

func TestLoadFilePartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "latest_json: data/latest.json\nseconds: 20\nmusic_volume: 0.1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if opts.LatestJSON != "data/latest.json" || opts.Seconds != 20 || opts.MusicVolume != 0.1 {
		t.Errorf("file values not applied: %+v", opts)
	}
	if opts.Width != 720 || opts.TitleWidth != 20 {
		t.Errorf("absent keys should keep defaults: %+v", opts)
	}
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.LatestJSON = "latest.json"
	valid.Background = "bg.mp4"
	valid.Music = "bgm.mp3"
	valid.Output = "out.mp4"
	if err := valid.Validate(); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}

	cases := []func(*Options){
		func(o *Options) { o.LatestJSON = "" },
		func(o *Options) { o.Output = "" },
		func(o *Options) { o.Seconds = 0 },
		func(o *Options) { o.TitleWidth = 0 },
		func(o *Options) { o.TitleLines = 0 },
		func(o *Options) { o.ChannelWidth = -1 },
		func(o *Options) { o.MusicVolume = -0.5 },
	}
	for i, mutate := range cases {
		o := *valid
		mutate(&o)
		if err := o.Validate(); err == nil {
			t.Errorf("case %d: invalid options accepted", i)
		}
	}
}
