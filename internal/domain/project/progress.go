package project

import (
	"fmt"
	"math"
	"strings"
)

const (
	progressBarLength = 22
	progressBarFill   = "█"
	progressBarEmpty  = "-"

	// NoTasksMessage replaces the bar when a project has nothing to measure.
	NoTasksMessage = "Create a task to have a progress bar!"
)

// CompletedCount returns how many tasks are completed.
func (p *Project) CompletedCount() int {
	n := 0
	for i := range p.Tasks {
		if p.Tasks[i].Completed {
			n++
		}
	}
	return n
}

// ProgressPercent returns the share of completed tasks as a whole percent,
// rounded half to even. ok is false when the project has no tasks.
func (p *Project) ProgressPercent() (percent int, ok bool) {
	total := len(p.Tasks)
	if total == 0 {
		return 0, false
	}
	return int(math.RoundToEven(float64(p.CompletedCount()) / float64(total) * 100)), true
}

// ProgressBar renders the completion bar shown on the project display, e.g.
//
//	Project Progress: |███████████-----------| 50.0% Complete
func (p *Project) ProgressBar() string {
	total := len(p.Tasks)
	if total == 0 {
		return NoTasksMessage
	}
	done := p.CompletedCount()
	filled := progressBarLength * done / total
	bar := strings.Repeat(progressBarFill, filled) + strings.Repeat(progressBarEmpty, progressBarLength-filled)
	percent := 100 * float64(done) / float64(total)
	return fmt.Sprintf("Project Progress: |%s| %.1f%% Complete", bar, percent)
}
