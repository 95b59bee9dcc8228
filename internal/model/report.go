package model

import "time"

// Status is the outcome of generating a single test file.
type Status int

const (
	// Success indicates the test file was generated and written.
	Success Status = iota
	// Failed indicates generation or writing failed; Reason holds the message.
	Failed
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// GenerationResult records what happened to one discovered source file.
type GenerationResult struct {
	Source       Path
	TestFilePath Path
	Content      string
	Status       Status
	Reason       string
	Overwritten  bool
}

// BatchReport summarizes one project-wide generation run.
type BatchReport struct {
	RunID       string
	ProjectType ProjectType
	Roots       []Path
	Results     []GenerationResult
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Succeeded returns the number of successful results.
func (r BatchReport) Succeeded() int {
	count := 0

	for _, res := range r.Results {
		if res.Status == Success {
			count++
		}
	}

	return count
}

// Failed returns the number of failed results.
func (r BatchReport) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// RunSummary is a persisted history row for a finished batch.
type RunSummary struct {
	RunID       string
	ProjectType string
	Roots       []Path
	Total       int
	Succeeded   int
	Failed      int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Detection is the outcome of project type detection.
type Detection struct {
	Type   ProjectType
	Counts map[ProjectType]int
}
