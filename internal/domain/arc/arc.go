package arc

import (
	"fmt"
	"math"
	"strings"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/domain/transcript"
	"github.com/ShaikhWarsi/Creator-Catalyst/internal/types"
)

// Silence is the preview placeholder for windows with no caption text.
const Silence = "(Silence)"

// previewMax caps the merged-text preview length, in runes.
const previewMax = 100

// Aggregate buckets segments into fixed windows of chunkDur seconds.
//
// The bucket count is anchored on the START time of the last segment, not on
// any end time. A long final caption can therefore spill past the arc; that
// matches the original charting behavior and is kept on purpose.
func Aggregate(segments []types.CaptionSegment, chunkDur int) []types.TimeBucket {
	if len(segments) == 0 || chunkDur <= 0 {
		return nil
	}

	maxTime := transcript.ToSeconds(segments[len(segments)-1].StartTime)
	numBuckets := int(math.Floor(maxTime/float64(chunkDur))) + 1

	buckets := make([]types.TimeBucket, numBuckets)
	for i := range buckets {
		buckets[i].Index = i
	}

	for _, seg := range segments {
		idx := int(math.Floor(transcript.ToSeconds(seg.StartTime) / float64(chunkDur)))
		// Rounding at a window boundary can push the index outside the arc;
		// such segments are dropped rather than failing the aggregation.
		if idx < 0 || idx >= numBuckets {
			continue
		}
		buckets[idx].Fragments = append(buckets[idx].Fragments, seg.Text)
	}
	return buckets
}

// MergedText joins a bucket's caption fragments in order.
func MergedText(b types.TimeBucket) string {
	return strings.Join(b.Fragments, " ")
}

// TimeLabel renders the window start as "MM:SS" for the chart x-axis. The
// minutes field does not carry into hours, so minute 90 stays "90:00".
func TimeLabel(bucketIndex, chunkDur int) string {
	startSec := bucketIndex * chunkDur
	return fmt.Sprintf("%02d:%02d", startSec/60, startSec%60)
}

// Preview shortens merged text for hover tooltips.
func Preview(merged string) string {
	if strings.TrimSpace(merged) == "" {
		return Silence
	}
	r := []rune(merged)
	if len(r) > previewMax {
		r = r[:previewMax]
	}
	return string(r) + "..."
}
