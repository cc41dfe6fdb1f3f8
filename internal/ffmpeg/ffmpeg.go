// Package ffmpeg drives the external encoder through ffmpeg-go: looped
// background and music inputs, the composited overlay chain, and a fixed
// shorts-friendly H.264 encode profile.
package ffmpeg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Job describes one render: inputs, duration, and the composited -vf chain.
type Job struct {
	Background  string
	Music       string
	Output      string
	Seconds     int
	FrameRate   int
	MusicVolume float64
	FilterChain string
}

// RenderError carries the encoder's captured diagnostic output alongside the
// underlying process failure.
type RenderError struct {
	Err    error
	Output string
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("ffmpeg failed: %v", e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *RenderError) Unwrap() error { return e.Err }

// Renderer invokes the encoder. The call blocks until the encode finishes.
type Renderer struct {
	verbose bool
	log     zerolog.Logger
}

func NewRenderer(log zerolog.Logger, verbose bool) *Renderer {
	return &Renderer{verbose: verbose, log: log}
}

// Render runs the encode. Both inputs loop indefinitely and the output is
// trimmed to the job duration. Returns a RenderError on a non-zero exit.
func (r *Renderer) Render(job *Job) error {
	background := ffmpeg.Input(job.Background, ffmpeg.KwArgs{"stream_loop": -1})
	music := ffmpeg.Input(job.Music, ffmpeg.KwArgs{"stream_loop": -1})

	outputKwargs := ffmpeg.KwArgs{
		"t":         job.Seconds,
		"vf":        job.FilterChain,
		"r":         job.FrameRate,
		"c:v":       "libx264",
		"pix_fmt":   "yuv420p",
		"profile:v": "high",
		"level":     "4.0",
		"map":       []string{"0:v:0", "1:a:0"},
		"af":        fmt.Sprintf("volume=%s", strconv.FormatFloat(job.MusicVolume, 'f', -1, 64)),
		"c:a":       "aac",
		"b:a":       "128k",
	}

	cmd := ffmpeg.Output([]*ffmpeg.Stream{background, music}, job.Output, outputKwargs).
		OverWriteOutput().
		Compile()

	// Diagnostics are captured so a failure can be surfaced verbatim.
	var captured bytes.Buffer
	cmd.Stdout = &captured
	cmd.Stderr = &captured

	if r.verbose {
		r.log.Debug().Str("cmd", cmd.String()).Msg("invoking ffmpeg")
	}

	if err := cmd.Run(); err != nil {
		return &RenderError{Err: err, Output: captured.String()}
	}
	return nil
}

// Metadata describes a probed media file.
type Metadata struct {
	Duration float64
	Width    int
	Height   int
	Codec    string
}

// Probe inspects a media file, used for verbose background-clip reporting.
func (r *Renderer) Probe(inputPath string) (*Metadata, error) {
	probe, err := ffmpeg.Probe(inputPath)
	if err != nil {
		return nil, errors.Wrap(err, "error probing input")
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(probe), &data); err != nil {
		return nil, errors.WithStack(err)
	}

	streams, _ := data["streams"].([]interface{})
	var videoStream map[string]interface{}
	for _, stream := range streams {
		s, ok := stream.(map[string]interface{})
		if !ok {
			continue
		}
		if codecType, _ := s["codec_type"].(string); codecType == "video" {
			videoStream = s
			break
		}
	}
	if videoStream == nil {
		return nil, errors.New("no video stream found")
	}

	meta := &Metadata{}
	if w, ok := videoStream["width"].(float64); ok {
		meta.Width = int(w)
	}
	if h, ok := videoStream["height"].(float64); ok {
		meta.Height = int(h)
	}
	meta.Codec, _ = videoStream["codec_name"].(string)

	if durationStr, ok := videoStream["duration"].(string); ok {
		if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
			meta.Duration = d
		}
	}
	if meta.Duration == 0 {
		if format, ok := data["format"].(map[string]interface{}); ok {
			if durationStr, ok := format["duration"].(string); ok {
				if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
					meta.Duration = d
				}
			}
		}
	}

	return meta, nil
}
