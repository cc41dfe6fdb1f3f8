package rankvideo

import (
	"fmt"

	"github.com/shorts-ranking/rank-video/internal/overlay"
	"github.com/shorts-ranking/rank-video/internal/snapshot"
	"github.com/shorts-ranking/rank-video/internal/textfmt"
)

// buildBlocks derives the three display blocks from the top items: TOP-n
// label, smart-wrapped title, and the channel/view-count meta line. Rank 1
// is marked primary for the stronger emphasis styling.
func buildBlocks(items []snapshot.Item, titleWidth, titleLines, channelWidth int) ([3]overlay.Block, error) {
	var blocks [3]overlay.Block
	for i, item := range items[:3] {
		lines, err := textfmt.Wrap(item.Title, titleWidth, titleLines)
		if err != nil {
			return blocks, err
		}
		channel := textfmt.Truncate(item.ChannelTitle, channelWidth)
		views := textfmt.FormatViews(item.Views)
		blocks[i] = overlay.Block{
			Rank:       fmt.Sprintf("TOP%d", i+1),
			TitleLines: lines,
			Meta:       fmt.Sprintf("%s  /  %s", channel, views),
			Primary:    i == 0,
		}
	}
	return blocks, nil
}
