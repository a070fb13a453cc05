package transcript

import (
	"strconv"
	"strings"
)

// ToSeconds converts an SRT timestamp to seconds. Both "HH:MM:SS,mmm" and
// "HH:MM:SS.mmm" are accepted, as is the short "MM:SS(,mmm)" form.
//
// The codec never fails: anything it cannot read converts to 0.0. Malformed
// user captions degrade the arc instead of aborting it.
func ToSeconds(timestamp string) float64 {
	t := strings.ReplaceAll(timestamp, ",", ".")
	parts := strings.Split(t, ":")
	switch len(parts) {
	case 3:
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0
		}
		s, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0
		}
		return float64(h)*3600 + float64(m)*60 + s
	case 2:
		m, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0
		}
		s, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0
		}
		return float64(m)*60 + s
	default:
		return 0
	}
}
