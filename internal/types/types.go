package types

// CaptionSegment is one parsed SRT caption block. Timestamps keep the exact
// string form found in the source; conversion to seconds happens later.
type CaptionSegment struct {
	Index     int    `json:"index"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Text      string `json:"text"`
}

// TimeBucket accumulates caption texts whose start time falls inside one
// fixed-duration window of the video timeline.
type TimeBucket struct {
	Index     int
	Fragments []string
}

// SentimentPoint is one entry of the emotional arc, ready for charting.
type SentimentPoint struct {
	TimeLabel string  `json:"time"`
	Score     float64 `json:"sentiment"`
	Preview   string  `json:"text"`
}

// Arc is the manifest written next to a processed transcript.
type Arc struct {
	Input         string           `json:"input"`
	ChunkDuration int              `json:"chunk_duration_sec"`
	Points        []SentimentPoint `json:"points"`
}
