package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/types"
)

// blockRE matches one SRT caption block: index line, timestamp line, then the
// body up to the next blank line. The scanner appends a sentinel blank line,
// so the terminator can be consumed instead of looked ahead.
var blockRE = regexp.MustCompile(`(?s)(\d+)\n(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})\n(.*?)\n\n`)

// Parse splits raw SRT text into ordered caption segments.
//
// Blocks that do not match the canonical numbered-block grammar are skipped
// silently; empty input yields an empty slice. The sequence index is taken
// verbatim from the source and is not checked for uniqueness or order.
func Parse(raw string) []types.CaptionSegment {
	if raw == "" {
		return nil
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	// Sentinel blank line so a trailing block without one still matches.
	matches := blockRE.FindAllStringSubmatch(raw+"\n\n", -1)

	segments := make([]types.CaptionSegment, 0, len(matches))
	for _, m := range matches {
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		text := strings.TrimSpace(strings.ReplaceAll(m[4], "\n", " "))
		segments = append(segments, types.CaptionSegment{
			Index:     idx,
			StartTime: m[2],
			EndTime:   m[3],
			Text:      text,
		})
	}
	return segments
}
