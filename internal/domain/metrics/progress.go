// Package metrics computes the derived project metrics: progress and
// financial balance. Both are pure folds over child records; callers decide
// whether and where to cache the results.
package metrics

import (
	"math"
	"time"

	"freelance-engagement-backend/internal/domain/deliverable"
	"freelance-engagement-backend/internal/domain/project"
)

// Weights blends the two progress components. The split is a business choice,
// kept configurable; any choice is valid as long as progress stays monotonic
// in elapsed time and in the completed-deliverable fraction.
type Weights struct {
	Time        float64
	Deliverable float64
}

var DefaultWeights = Weights{Time: 0.4, Deliverable: 0.6}

// TimeFraction returns how much of the project's date span has elapsed, in
// [0, 1]. Projects without an end date, or not yet started, report 0; once
// now reaches the end date the fraction caps at 1.
func TimeFraction(now time.Time, start time.Time, end *time.Time) float64 {
	if end == nil || now.Before(start) {
		return 0
	}
	total := end.Sub(start)
	if total <= 0 || !now.Before(*end) {
		return 1
	}
	return float64(now.Sub(start)) / float64(total)
}

// Progress derives the 0-100 progress value for a project from its
// deliverables and date span.
//
// Finished forces 100 regardless of inputs. Cancelled freezes the value last
// stored on the project so it stops advancing with time. Otherwise the result
// blends the elapsed-time fraction and the delivered/approved deliverable
// fraction per w; with zero deliverables the time component carries the full
// weight.
func Progress(now time.Time, p *project.Project, dels []deliverable.Deliverable, w Weights) int {
	switch p.Status {
	case project.StatusFinished:
		return 100
	case project.StatusCancelled:
		return p.Progress
	}

	tf := TimeFraction(now, p.StartDate, p.EndDate)
	if len(dels) == 0 {
		return clampPercent(math.Round(tf * 100))
	}

	completed := 0
	for i := range dels {
		if dels[i].Completed() {
			completed++
		}
	}
	df := float64(completed) / float64(len(dels))

	return clampPercent(math.Round(tf*100*w.Time + df*100*w.Deliverable))
}

func clampPercent(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
