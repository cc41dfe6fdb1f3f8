package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// DefaultRetries and DefaultInterval bound the stabilized-read poll.
	DefaultRetries  = 6
	DefaultInterval = 250 * time.Millisecond
)

// Loader reads ranking snapshots with the stabilize-then-parse strategy.
// The producer writes the data file without coordination, so every read
// polls until two consecutive attempts see identical content.
type Loader struct {
	Retries  int
	Interval time.Duration

	log zerolog.Logger
}

// NewLoader returns a Loader with the default retry budget.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{
		Retries:  DefaultRetries,
		Interval: DefaultInterval,
		log:      log,
	}
}

// Load reads the primary path, falling back to its backup/temp variants in a
// fixed order. It returns a DataUnavailableError when no candidate yields
// parseable JSON, and a MalformedSnapshotError when the first parseable
// candidate is not a usable ranking.
func (l *Loader) Load(primary string) (*Snapshot, error) {
	raw, _, err := l.load(primary)
	if err != nil {
		return nil, err
	}
	return buildSnapshot(raw)
}

// load runs the fallback protocol and reports the per-candidate errors that
// preceded a success, which Load discards but tests assert on.
func (l *Loader) load(primary string) (*rawSnapshot, []string, error) {
	var attempts []string
	for _, candidate := range fallbackCandidates(primary) {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}

		l.log.Debug().Str("path", candidate).Msg("reading snapshot candidate")

		text, err := l.readStable(candidate)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", filepath.Base(candidate), err))
			continue
		}

		raw, err := parseCandidate(text)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", filepath.Base(candidate), err))
			continue
		}

		l.log.Debug().
			Str("path", candidate).
			Int("prior_errors", len(attempts)).
			Msg("snapshot candidate parsed")
		return raw, attempts, nil
	}

	return nil, nil, &DataUnavailableError{Path: primary, Attempts: attempts}
}

// fallbackCandidates lists the primary path plus its backup/temp variants in
// the order they are tried. Nonexistent candidates are skipped silently.
func fallbackCandidates(primary string) []string {
	dir := filepath.Dir(primary)
	base := filepath.Base(primary)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return []string{
		primary,
		primary + ".bak",
		filepath.Join(dir, stem+".bak"),
		filepath.Join(dir, base+".bak"),
		filepath.Join(dir, stem+".tmp"),
		filepath.Join(dir, base+".tmp"),
	}
}

type readSignature struct {
	size int64
	head string
}

// readStable rereads path until two consecutive attempts see the same
// (size, 64-rune prefix) signature, treating missing/empty files and invalid
// UTF-8 as transient. After the retry budget it returns the last non-empty
// text read, if any: availability is preferred over a hard failure, at the
// accepted risk of returning mid-write content.
func (l *Loader) readStable(path string) (string, error) {
	var (
		lastSig readSignature
		haveSig bool
		lastTxt string
	)

	for attempt := 0; attempt < l.Retries; attempt++ {
		st, err := os.Stat(path)
		if err != nil || st.Size() <= 0 {
			time.Sleep(l.Interval)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil || !utf8.Valid(data) {
			time.Sleep(l.Interval)
			continue
		}

		text := string(data)
		sig := readSignature{size: st.Size(), head: runePrefix(text, 64)}
		if haveSig && sig == lastSig {
			return text, nil
		}
		lastSig, haveSig = sig, true
		lastTxt = text

		time.Sleep(l.Interval)
	}

	if strings.TrimSpace(lastTxt) != "" {
		l.log.Warn().Str("path", path).Msg("snapshot never stabilized, using last read")
		return lastTxt, nil
	}
	return "", errors.New("file is empty or still being produced")
}

func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
