package domain

import "time"

// RunStats holds counters for one enrichment run, used for logging and metrics.
type RunStats struct {
	BookmarkID     string
	RunID          string
	Status         ProcessingStatus
	SummaryPresent bool
	MediaDetected  int
	MediaCompleted int
	MediaFailed    int
	MediaSkipped   int // already completed in a prior run
	StepFailures   int
	TokensUsed     int
	Duration       time.Duration
}
