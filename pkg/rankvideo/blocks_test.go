package rankvideo

import (
	"testing"

	"github.com/shorts-ranking/rank-video/internal/snapshot"
)

func topItems() []snapshot.Item {
	return []snapshot.Item{
		{Title: "とても長いタイトルのテスト動画です", ChannelTitle: "サンプルチャンネル名です", Views: float64(123456)},
		{Title: "短いタイトル", ChannelTitle: "Ch2", Views: "7890"},
		{Title: "Three", ChannelTitle: "Ch3", Views: float64(0)},
	}
}

func TestBuildBlocks(t *testing.T) {
	blocks, err := buildBlocks(topItems(), 20, 2, 18)
	if err != nil {
		t.Fatalf("buildBlocks() error: %v", err)
	}

	if blocks[0].Rank != "TOP1" || blocks[1].Rank != "TOP2" || blocks[2].Rank != "TOP3" {
		t.Errorf("rank labels = %s/%s/%s", blocks[0].Rank, blocks[1].Rank, blocks[2].Rank)
	}
	if !blocks[0].Primary || blocks[1].Primary || blocks[2].Primary {
		t.Error("only rank 1 should be primary")
	}

	if got, want := blocks[0].Meta, "サンプルチャンネル名です  /  123,456回"; got != want {
		t.Errorf("meta 1 = %q, want %q", got, want)
	}
	if got, want := blocks[1].Meta, "Ch2  /  7,890回"; got != want {
		t.Errorf("meta 2 = %q, want %q", got, want)
	}
	if got, want := blocks[2].Meta, "Ch3  /  0回"; got != want {
		t.Errorf("meta 3 = %q, want %q", got, want)
	}

	for i, b := range blocks {
		if len(b.TitleLines) == 0 || len(b.TitleLines) > 2 {
			t.Errorf("block %d has %d title lines, want 1..2", i+1, len(b.TitleLines))
		}
		for _, l := range b.TitleLines {
			if n := len([]rune(l)); n > 20 {
				t.Errorf("block %d title line %q exceeds 20 runes", i+1, l)
			}
		}
	}
}

func TestBuildBlocksTruncatesChannel(t *testing.T) {
	items := topItems()
	items[0].ChannelTitle = "とてもとても長いチャンネル名のサンプルですがまだ続く"

	blocks, err := buildBlocks(items, 20, 2, 18)
	if err != nil {
		t.Fatalf("buildBlocks() error: %v", err)
	}
	meta := []rune(blocks[0].Meta)
	// channel part is everything before the separator
	channelLen := 0
	for i := 0; i+4 < len(meta); i++ {
		if string(meta[i:i+5]) == "  /  " {
			channelLen = i
			break
		}
	}
	if channelLen > 18 {
		t.Errorf("channel part has %d runes, want <= 18", channelLen)
	}
}

func TestBuildBlocksInvalidWrapWidth(t *testing.T) {
	if _, err := buildBlocks(topItems(), 0, 2, 18); err == nil {
		t.Error("title width 0 should fail fast")
	}
}
