package domain

import "time"

// Run summarizes one scraper invocation.
type Run struct {
	ID          string
	Instance    string
	Username    string
	AccountID   string
	Method      string
	TotalPosts  int
	TotalImages int
	OutputPath  string
	StartedAt   time.Time
	Duration    time.Duration
	Error       string
}

func (r Run) Failed() bool {
	return r.Error != ""
}
