package rules

import (
	"fmt"
	"math"
	"strings"
	"time"

	"studyplan/entities"
	"studyplan/pkg/plan/types"
)

// Planner is the deterministic fallback used whenever the AI path fails.
// It never errors: even with zero subjects it produces a full plan.
type Planner interface {
	Fallback(subjects []entities.Subject, dailyHours int, today time.Time) types.StudyPlanResult
}

type Category string

const (
	CategoryMath      Category = "math"
	CategoryPhysics   Category = "physics"
	CategoryChemistry Category = "chemistry"
	CategoryBiology   Category = "biology"
	CategoryHistory   Category = "history"
	CategoryLanguage  Category = "language"
	CategoryComputing Category = "computing"
	CategoryGeneral   Category = "general"
)

// categoryOrder fixes the match order so classification stays deterministic.
var categoryOrder = []Category{
	CategoryMath, CategoryPhysics, CategoryChemistry, CategoryBiology,
	CategoryHistory, CategoryLanguage, CategoryComputing,
}

type template struct {
	Notes     string
	Resources string
}

const (
	assessmentSuffix = " End the session with a short timed self-assessment to prepare for the exam."
	motivationalTip  = "Consistency beats intensity: five focused days add up to real progress. You've got this!"
	placeholderName  = "General Study"
)

type planner struct {
	keywords  map[Category][]string
	templates map[Category]template
}

// New returns a Planner with the built-in category tables.
func New() Planner {
	return &planner{keywords: defaultKeywords(), templates: defaultTemplates()}
}

func defaultKeywords() map[Category][]string {
	return map[Category][]string{
		CategoryMath:      {"math", "algebra", "calculus", "geometry", "statistic"},
		CategoryPhysics:   {"physics", "mechanics"},
		CategoryChemistry: {"chem"},
		CategoryBiology:   {"bio", "anatomy"},
		CategoryHistory:   {"history", "social", "geography", "civics"},
		CategoryLanguage:  {"english", "literature", "language", "writing"},
		CategoryComputing: {"computer", "programming", "coding", "software"},
	}
}

func defaultTemplates() map[Category]template {
	return map[Category]template{
		CategoryMath: {
			Notes:     "Work through practice problems step by step and redo every one you got wrong.",
			Resources: "Khan Academy, past papers, a formula sheet you write yourself",
		},
		CategoryPhysics: {
			Notes:     "Derive the key formulas before applying them, then solve numerical problems under time pressure.",
			Resources: "HyperPhysics, worked examples from your textbook, unit-conversion drills",
		},
		CategoryChemistry: {
			Notes:     "Balance reactions by hand and connect every mechanism to the underlying principle.",
			Resources: "Periodic table app, reaction flashcards, lab notes",
		},
		CategoryBiology: {
			Notes:     "Draw the processes from memory, then label diagrams without looking at the book.",
			Resources: "Anki decks, labelled diagrams, concise summary sheets",
		},
		CategoryHistory: {
			Notes:     "Build a timeline of events and practice explaining causes and consequences aloud.",
			Resources: "Timelines, primary-source excerpts, essay outlines",
		},
		CategoryLanguage: {
			Notes:     "Alternate active reading with writing summaries in your own words.",
			Resources: "Vocabulary flashcards, graded readers, sample essays",
		},
		CategoryComputing: {
			Notes:     "Re-implement the examples from scratch and debug without copying the reference.",
			Resources: "Official docs, small coding katas, a scratch project",
		},
		CategoryGeneral: {
			Notes:     "Review your notes actively: summarize, self-test, and mark what still feels shaky.",
			Resources: "Your class notes, flashcards, a quiet timer-driven workspace",
		},
	}
}

// Classify maps a free-text subject name to a category by case-insensitive
// keyword match, defaulting to CategoryGeneral.
func (p *planner) Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, cat := range categoryOrder {
		for _, kw := range p.keywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return CategoryGeneral
}

func (p *planner) templateFor(name string) template {
	return p.templates[p.Classify(name)]
}

func (p *planner) Fallback(subjects []entities.Subject, dailyHours int, today time.Time) types.StudyPlanResult {
	sorted := entities.SortByDeadline(subjects, today)
	if len(sorted) == 0 {
		sorted = []entities.Subject{{Name: placeholderName}}
	}
	n := len(sorted)
	dates := types.NextDates(today)

	days := make([]types.StudyPlanDay, 0, types.PlanDays)
	cursor := 0
	for i := 0; i < types.PlanDays; i++ {
		var day types.StudyPlanDay
		if i%2 == 0 && n >= 2 {
			a, b := sorted[cursor%n], sorted[(cursor+1)%n]
			cursor += 2
			day = p.multiSubjectDay(a, b, dailyHours, today)
		} else {
			s := sorted[cursor%n]
			cursor++
			day = p.singleSubjectDay(s, dailyHours, today)
		}
		day.Day = dates[i].Day
		day.Date = dates[i].Date
		if i == types.PlanDays-1 {
			day.Notes += assessmentSuffix
		}
		days = append(days, day)
	}

	return types.StudyPlanResult{Days: days, MotivationalTip: motivationalTip}
}

// multiSubjectDay spends the full daily budget across two subjects, not a
// per-subject split.
func (p *planner) multiSubjectDay(a, b entities.Subject, dailyHours int, today time.Time) types.StudyPlanDay {
	pa := types.PriorityFor(types.DaysUntil(a.Deadline, today))
	pb := types.PriorityFor(types.DaysUntil(b.Deadline, today))
	ta, tb := p.templateFor(a.Name), p.templateFor(b.Name)

	res := ta.Resources
	if tb.Resources != ta.Resources {
		res += "; " + tb.Resources
	}
	return types.StudyPlanDay{
		Subjects:  a.Name + ", " + b.Name,
		Hours:     dailyHours,
		Notes:     fmt.Sprintf("Split the day between %s and %s. %s", a.Name, b.Name, ta.Notes),
		Priority:  types.HigherPriority(pa, pb),
		Resources: res,
	}
}

func (p *planner) singleSubjectDay(s entities.Subject, dailyHours int, today time.Time) types.StudyPlanDay {
	pr := types.PriorityFor(types.DaysUntil(s.Deadline, today))
	t := p.templateFor(s.Name)

	share := 0.5
	if pr == types.PriorityHigh {
		share = 0.8
	}
	return types.StudyPlanDay{
		Subjects:  s.Name,
		Hours:     int(math.Ceil(float64(dailyHours) * share)),
		Notes:     t.Notes,
		Priority:  pr,
		Resources: t.Resources,
	}
}
