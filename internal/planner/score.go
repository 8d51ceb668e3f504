package planner

import (
	"math"
	"strings"
	"time"

	"daily-priority-agent/internal/model"
)

// QuickWinMaxEffort is the largest effort, in minutes, that earns the quick-win bonus.
const QuickWinMaxEffort = 15

// Urgency levels on the 0-5 scale.
const (
	UrgencyNoDeadline = 0.5
	UrgencyDueNow     = 5.0
	UrgencyTomorrow   = 4.0
	UrgencyThreeDays  = 3.0
	UrgencyWeek       = 2.0
	UrgencyLater      = 1.0
)

// Reason tags.
const (
	ReasonOverdue      = "Overdue"
	ReasonDueToday     = "Due today"
	ReasonDueSoon      = "Due soon"
	ReasonNoDeadline   = "No deadline"
	ReasonHighImpact   = "High impact"
	ReasonMediumImpact = "Medium impact"
	ReasonQuickWin     = "Quick win"
	ReasonBlocked      = "Blocked (needs unblock step)"
)

// Breakdown itemizes the terms of a task score.
type Breakdown struct {
	Urgency        float64 `json:"urgency" yaml:"urgency"`
	Importance     float64 `json:"importance" yaml:"importance"`
	QuickWin       float64 `json:"quickwin" yaml:"quickwin"`
	BlockedPenalty float64 `json:"blocked_penalty" yaml:"blocked_penalty"`
	FinalScore     float64 `json:"final_score" yaml:"final_score"`
}

// Rounded returns b with every term rounded to 2 decimals.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		Urgency:        round2(b.Urgency),
		Importance:     round2(b.Importance),
		QuickWin:       round2(b.QuickWin),
		BlockedPenalty: round2(b.BlockedPenalty),
		FinalScore:     round2(b.FinalScore),
	}
}

// signals are the deadline and effort facts shared by Urgency and Reason.
type signals struct {
	hasDeadline bool
	daysLeft    int
	quickWin    bool
	blocked     bool
}

func signalsOf(t model.Task, today time.Time) signals {
	s := signals{
		quickWin: t.EffortMin <= QuickWinMaxEffort,
		blocked:  t.Blocked,
	}
	if t.Deadline != nil {
		s.hasDeadline = true
		s.daysLeft = DaysUntil(*t.Deadline, today)
	}
	return s
}

func (s signals) overdue() bool  { return s.hasDeadline && s.daysLeft < 0 }
func (s signals) dueToday() bool { return s.hasDeadline && s.daysLeft == 0 }
func (s signals) dueSoon() bool  { return s.hasDeadline && s.daysLeft >= 1 && s.daysLeft <= 3 }

func (s signals) urgency() float64 {
	switch {
	case !s.hasDeadline:
		return UrgencyNoDeadline
	case s.overdue(), s.dueToday():
		return UrgencyDueNow
	case s.daysLeft == 1:
		return UrgencyTomorrow
	case s.daysLeft <= 3:
		return UrgencyThreeDays
	case s.daysLeft <= 7:
		return UrgencyWeek
	default:
		return UrgencyLater
	}
}

// DaysUntil returns the whole number of calendar days from today to deadline.
// Negative when the deadline has passed.
func DaysUntil(deadline, today time.Time) int {
	return int(model.Date(deadline).Sub(model.Date(today)).Hours() / 24)
}

// Urgency maps a task deadline to the 0-5 urgency scale.
func Urgency(t model.Task, today time.Time) float64 {
	return signalsOf(t, today).urgency()
}

// Score computes the priority score of t and the breakdown of its terms.
func Score(t model.Task, today time.Time, cfg Config) (float64, Breakdown) {
	s := signalsOf(t, today)

	urg := s.urgency()
	imp := float64(t.Impact)

	var qwb float64
	if s.quickWin {
		qwb = cfg.Weights.QuickWinBonus
	}
	var bpen float64
	if s.blocked {
		bpen = cfg.Weights.BlockedPenalty
	}

	score := cfg.Weights.Urgency*urg + cfg.Weights.Importance*imp + qwb - bpen

	return score, Breakdown{
		Urgency:        urg,
		Importance:     imp,
		QuickWin:       qwb,
		BlockedPenalty: bpen,
		FinalScore:     score,
	}
}

// Reason explains a score in a short comma-joined list of tags.
func Reason(t model.Task, today time.Time) string {
	s := signalsOf(t, today)
	reasons := make([]string, 0, 4)

	switch {
	case !s.hasDeadline:
		reasons = append(reasons, ReasonNoDeadline)
	case s.overdue():
		reasons = append(reasons, ReasonOverdue)
	case s.dueToday():
		reasons = append(reasons, ReasonDueToday)
	case s.dueSoon():
		reasons = append(reasons, ReasonDueSoon)
	}

	switch t.Impact {
	case model.ImpactHigh:
		reasons = append(reasons, ReasonHighImpact)
	case model.ImpactMedium:
		reasons = append(reasons, ReasonMediumImpact)
	}

	if s.quickWin {
		reasons = append(reasons, ReasonQuickWin)
	}
	if s.blocked {
		reasons = append(reasons, ReasonBlocked)
	}

	return strings.Join(reasons, ", ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
