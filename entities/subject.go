package entities

import (
	"sort"
	"time"

	"studyplan/pkg/plan/types"
)

type Subject struct {
	SubjectID string     `gorm:"primaryKey" json:"subject_id"`
	UserID    string     `json:"user_id" gorm:"index"`
	Name      string     `json:"name"`
	Deadline  *time.Time `json:"deadline,omitempty"`

	CreatedAt time.Time
}

// SubjectSnapshot is the immutable copy of a subject embedded in a saved plan.
type SubjectSnapshot struct {
	SubjectID string     `json:"subject_id"`
	Name      string     `json:"name"`
	Deadline  *time.Time `json:"deadline,omitempty"`
}

// SortByDeadline returns a copy ordered by days remaining, nearest first.
// Subjects without a deadline sort last; the order is stable so equal
// deadlines keep their input order.
func SortByDeadline(subjects []Subject, today time.Time) []Subject {
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	sort.SliceStable(out, func(i, j int) bool {
		return types.DaysUntil(out[i].Deadline, today) < types.DaysUntil(out[j].Deadline, today)
	})
	return out
}

func Snapshot(subjects []Subject) []SubjectSnapshot {
	out := make([]SubjectSnapshot, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, SubjectSnapshot{SubjectID: s.SubjectID, Name: s.Name, Deadline: s.Deadline})
	}
	return out
}
