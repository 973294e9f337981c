package history

import "time"

// Entry is one persisted recompute record.
type Entry struct {
	ID        int64   `json:"id"`
	Trigger   string  `json:"trigger"`
	Intrinsic string  `json:"intrinsic_min_width"`
	Width     string  `json:"sidebar_width"`
	Left      string  `json:"sidebar_left"`
	Expr      string  `json:"expr"`
	Resolved  bool    `json:"resolved"`
	Px        float64 `json:"resolved_px"`
	ViewportW int     `json:"viewport_width"`
	ViewportH int     `json:"viewport_height"`

	Timestamp time.Time `json:"timestamp"`
}
