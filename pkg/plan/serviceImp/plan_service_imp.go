package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"studyplan/entities"
	"studyplan/pkg/ai"
	planrepo "studyplan/pkg/plan/repository"
	"studyplan/pkg/plan/service"
	"studyplan/pkg/plan/types"
	"studyplan/pkg/rules"
)

// resourceSearcher is the slice of the library service the planner needs.
type resourceSearcher interface {
	Search(query string, k int) ([]entities.ResourceChunk, error)
}

type PlanSvc struct {
	llm      ai.Client
	fallback rules.Planner
	repoPlan planrepo.PlanRepository
	library  resourceSearcher // may be nil

	now         func() time.Time
	maxAttempts int // rate-limit retries, adapter call included
	baseDelay   time.Duration
}

func NewPlanService(llm ai.Client, fb rules.Planner, pr planrepo.PlanRepository, lib resourceSearcher) *PlanSvc {
	return &PlanSvc{
		llm:         llm,
		fallback:    fb,
		repoPlan:    pr,
		library:     lib,
		now:         time.Now,
		maxAttempts: 3,
		baseDelay:   500 * time.Millisecond,
	}
}

func (s *PlanSvc) Generate(ctx context.Context, uid string, in service.GenerateInput) (*entities.StudyPlan, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	result, source := s.generateWithRetry(ctx, in.Subjects, in.DailyHours, today, s.resourceContext(in.Subjects))

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "Study plan starting " + today.Format("Jan 2, 2006")
	}

	p := &entities.StudyPlan{
		UserID:          uid,
		Title:           title,
		Subjects:        entities.Snapshot(in.Subjects),
		DailyHours:      in.DailyHours,
		Days:            result.Days,
		MotivationalTip: result.MotivationalTip,
		Source:          source,
	}
	if err := s.repoPlan.Create(p); err != nil {
		// non-fatal: the caller still shows the generated plan
		log.Printf("save plan: %v", err)
		return p, fmt.Errorf("save plan: %w", err)
	}
	return p, nil
}

// generateWithRetry runs the AI path with capped doubling backoff on rate
// limits, and falls back to the rules planner on any other failure. It never
// returns an unusable plan.
func (s *PlanSvc) generateWithRetry(ctx context.Context, subjects []entities.Subject, dailyHours int, today time.Time, resourceCtx string) (*types.StudyPlanResult, string) {
	delay := s.baseDelay
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		res, err := s.llm.GeneratePlan(ctx, subjects, dailyHours, today, resourceCtx)
		if err == nil {
			return res, entities.PlanSourceAI
		}
		if !errors.Is(err, ai.ErrRateLimited) || attempt == s.maxAttempts {
			log.Printf("ai plan failed (attempt %d): %v; using fallback", attempt, err)
			break
		}
		log.Printf("ai rate limited, retrying in %s", delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			res := s.fallback.Fallback(subjects, dailyHours, today)
			return &res, entities.PlanSourceFallback
		}
		delay *= 2
	}
	res := s.fallback.Fallback(subjects, dailyHours, today)
	return &res, entities.PlanSourceFallback
}

// resourceContext collects library snippets matching the subject names so the
// prompt can recommend concrete materials. Errors are ignored; context is a
// nice-to-have.
func (s *PlanSvc) resourceContext(subjects []entities.Subject) string {
	if s.library == nil || len(subjects) == 0 {
		return ""
	}
	names := make([]string, 0, len(subjects))
	for _, sub := range subjects {
		names = append(names, sub.Name)
	}
	chunks, _ := s.library.Search(strings.Join(names, " "), 6)

	var b strings.Builder
	for _, ch := range chunks {
		if b.Len() > 4000 {
			break
		}
		b.WriteString("\n---\n")
		b.WriteString(ch.Text)
	}
	return b.String()
}

func (s *PlanSvc) List(uid string) ([]entities.StudyPlan, error) {
	return s.repoPlan.ListByUser(uid)
}

func (s *PlanSvc) Get(id uint, uid string) (*entities.StudyPlan, error) {
	return s.repoPlan.FindByID(id, uid)
}

func (s *PlanSvc) Delete(id uint, uid string) error {
	return s.repoPlan.Delete(id, uid)
}
