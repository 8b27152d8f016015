package metrics

import (
	"testing"
	"time"

	"freelance-engagement-backend/internal/domain/deliverable"
	"freelance-engagement-backend/internal/domain/project"
)

func day(n int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestTimeFraction(t *testing.T) {
	start := day(0)
	end := day(10)

	cases := []struct {
		name string
		now  time.Time
		end  *time.Time
		want float64
	}{
		{"halfway", day(5), &end, 0.5},
		{"before start", day(-1), &end, 0},
		{"at start", day(0), &end, 0},
		{"at end", day(10), &end, 1},
		{"past end", day(40), &end, 1},
		{"open ended", day(5), nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := TimeFraction(c.now, start, c.end)
			if got != c.want {
				t.Fatalf("TimeFraction = %v, want %v", got, c.want)
			}
		})
	}
}

func TestProgress_NoDeliverables_TimeOnly(t *testing.T) {
	end := day(10)
	p := &project.Project{Status: project.StatusActive, StartDate: day(0), EndDate: &end}

	// With no deliverables the time component carries the full weight:
	// 5 of 10 days elapsed = 50.
	if got := Progress(day(5), p, nil, DefaultWeights); got != 50 {
		t.Fatalf("Progress = %d, want 50", got)
	}
}

func TestProgress_BlendsTimeAndDeliverables(t *testing.T) {
	end := day(10)
	p := &project.Project{Status: project.StatusActive, StartDate: day(0), EndDate: &end}

	dels := []deliverable.Deliverable{
		{Status: deliverable.StatusApproved},
		{Status: deliverable.StatusDelivered},
		{Status: deliverable.StatusInProgress},
		{Status: deliverable.StatusPending},
	}

	// tf = 0.5, df = 2/4: round(0.5*100*0.4 + 0.5*100*0.6) = 50
	if got := Progress(day(5), p, dels, DefaultWeights); got != 50 {
		t.Fatalf("Progress = %d, want 50", got)
	}

	// All time elapsed, same deliverables: round(100*0.4 + 50*0.6) = 70
	if got := Progress(day(10), p, dels, DefaultWeights); got != 70 {
		t.Fatalf("Progress = %d, want 70", got)
	}
}

func TestProgress_RejectedDoesNotCount(t *testing.T) {
	end := day(10)
	p := &project.Project{Status: project.StatusActive, StartDate: day(0), EndDate: &end}

	dels := []deliverable.Deliverable{
		{Status: deliverable.StatusRejected},
		{Status: deliverable.StatusApproved},
	}

	// tf = 1, df = 1/2: round(100*0.4 + 50*0.6) = 70
	if got := Progress(day(10), p, dels, DefaultWeights); got != 70 {
		t.Fatalf("Progress = %d, want 70", got)
	}
}

func TestProgress_FinishedForces100(t *testing.T) {
	end := day(10)
	p := &project.Project{Status: project.StatusFinished, StartDate: day(0), EndDate: &end}

	if got := Progress(day(1), p, nil, DefaultWeights); got != 100 {
		t.Fatalf("finished project Progress = %d, want 100", got)
	}
}

func TestProgress_CancelledFreezesStoredValue(t *testing.T) {
	end := day(10)
	p := &project.Project{Status: project.StatusCancelled, StartDate: day(0), EndDate: &end, Progress: 37}

	// Even far past the end date, the value stays frozen.
	if got := Progress(day(100), p, nil, DefaultWeights); got != 37 {
		t.Fatalf("cancelled project Progress = %d, want 37", got)
	}
}

func TestProgress_CustomWeights(t *testing.T) {
	end := day(10)
	p := &project.Project{Status: project.StatusActive, StartDate: day(0), EndDate: &end}

	dels := []deliverable.Deliverable{
		{Status: deliverable.StatusApproved},
		{Status: deliverable.StatusPending},
	}

	w := Weights{Time: 0.2, Deliverable: 0.8}
	// tf = 0.5, df = 0.5: round(50*0.2 + 50*0.8) = 50
	if got := Progress(day(5), p, dels, w); got != 50 {
		t.Fatalf("Progress = %d, want 50", got)
	}
	// tf = 1, df = 0.5: round(100*0.2 + 50*0.8) = 60
	if got := Progress(day(10), p, dels, w); got != 60 {
		t.Fatalf("Progress = %d, want 60", got)
	}
}
