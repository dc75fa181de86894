package learn

import "github.com/anatolykoptev/go_tutor/internal/engine"

// ParseDuration converts a PT#H#M#S duration to seconds.
// Missing components count as 0; anything not starting with "PT" is 0.
func ParseDuration(iso string) int {
	h, m, s, ok := engine.SplitISODuration(iso)
	if !ok {
		return 0
	}
	return h*3600 + m*60 + s
}

// EngagementRate is (likes + comments) per 100 views. Zero views count as one.
func EngagementRate(views, likes, comments uint64) float64 {
	return float64(likes+comments) / float64(max(views, 1)) * 100
}

// durationScore prefers 10–60 minute videos, then 1–2 hours, then 5–10 minutes.
func durationScore(seconds int) float64 {
	minutes := float64(seconds) / 60
	switch {
	case minutes >= 10 && minutes <= 60:
		return 1.0
	case minutes >= 5 && minutes < 10:
		return 0.8
	case minutes > 60 && minutes <= 120:
		return 0.9
	default:
		return 0.6
	}
}

// Score combines views, engagement rate and the duration band with fixed weights.
func Score(views uint64, engagementRate float64, durationSeconds int) float64 {
	return float64(views)/1000*0.3 +
		engagementRate*10*0.4 +
		durationScore(durationSeconds)*100*0.3
}

// QualityScore scores a video from its raw statistics.
func QualityScore(st engine.VideoStatistics) float64 {
	return Score(st.ViewCount, EngagementRate(st.ViewCount, st.LikeCount, st.CommentCount), ParseDuration(st.Duration))
}
