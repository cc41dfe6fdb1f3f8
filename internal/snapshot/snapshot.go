// Package snapshot reads point-in-time ranking data files that may be
// concurrently rewritten by the producer process. Reads are stabilized by
// polling (two consecutive identical reads count as stable) and fall back to
// backup and temp copies of the same base name.
package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Snapshot is one ranking data file, immutable once loaded.
type Snapshot struct {
	UpdatedAt string
	Items     []Item
}

// Item is a single ranked entry. Views keeps the raw JSON value: producers
// emit it as either a number or a string and formatting decides later.
type Item struct {
	Title        string
	ChannelTitle string
	Views        interface{}
}

// Top3 returns the first three items in rank order.
func (s *Snapshot) Top3() []Item {
	return s.Items[:3]
}

type rawSnapshot struct {
	UpdatedAt interface{}       `json:"updated_at"`
	Items     []json.RawMessage `json:"items"`
}

// requiredItemKeys must be present on every consumed item.
var requiredItemKeys = []string{"title", "channel_title", "views"}

// parseCandidate decodes candidate text as JSON. Failures here are
// per-candidate and the loader moves on to the next fallback.
func parseCandidate(text string) (*rawSnapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// buildSnapshot validates the parsed shape and materializes the typed
// snapshot. Shape failures are terminal, not fallback candidates: the data
// was readable and parseable, it just isn't a usable ranking.
func buildSnapshot(raw *rawSnapshot) (*Snapshot, error) {
	if len(raw.Items) < 3 {
		return nil, &MalformedSnapshotError{
			Detail: fmt.Sprintf("items has %d entries, need at least 3", len(raw.Items)),
		}
	}

	snap := &Snapshot{
		UpdatedAt: strings.TrimSpace(asString(raw.UpdatedAt)),
		Items:     make([]Item, 0, len(raw.Items)),
	}

	for i, rawItem := range raw.Items {
		var fields map[string]interface{}
		if err := json.Unmarshal(rawItem, &fields); err != nil {
			if i < 3 {
				return nil, &MalformedSnapshotError{
					Detail: fmt.Sprintf("items[%d] is not an object", i),
				}
			}
			continue
		}
		if i < 3 {
			for _, key := range requiredItemKeys {
				if _, ok := fields[key]; !ok {
					return nil, &MalformedSnapshotError{
						Detail: fmt.Sprintf("items[%d] is missing %q", i, key),
					}
				}
			}
		}
		snap.Items = append(snap.Items, Item{
			Title:        asString(fields["title"]),
			ChannelTitle: asString(fields["channel_title"]),
			Views:        fields["views"],
		})
	}

	return snap, nil
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}
