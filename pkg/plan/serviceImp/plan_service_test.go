package serviceImp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyplan/entities"
	"studyplan/pkg/ai"
	"studyplan/pkg/plan/service"
	"studyplan/pkg/plan/types"
	"studyplan/pkg/rules"
)

var testToday = time.Date(2026, 1, 5, 12, 30, 0, 0, time.UTC)

type fakeClient struct {
	calls       int
	failWith    error
	failFirstN  int
	resourceCtx string
	result      *types.StudyPlanResult
}

func (f *fakeClient) GeneratePlan(_ context.Context, subjects []entities.Subject, dailyHours int, today time.Time, resourceCtx string) (*types.StudyPlanResult, error) {
	f.calls++
	f.resourceCtx = resourceCtx
	if f.failWith != nil && (f.failFirstN == 0 || f.calls <= f.failFirstN) {
		return nil, f.failWith
	}
	if f.result != nil {
		return f.result, nil
	}
	days := make([]types.StudyPlanDay, 0, types.PlanDays)
	for _, dd := range types.NextDates(today) {
		days = append(days, types.StudyPlanDay{
			Day: dd.Day, Date: dd.Date, Subjects: "Math", Hours: dailyHours,
			Notes: "from ai", Priority: types.PriorityHigh,
		})
	}
	return &types.StudyPlanResult{Days: days, MotivationalTip: "ai tip"}, nil
}

type fakeRepo struct {
	created []*entities.StudyPlan
	failing bool
}

func (r *fakeRepo) Create(p *entities.StudyPlan) error {
	if r.failing {
		return errors.New("disk full")
	}
	p.PlanID = uint(len(r.created) + 1)
	r.created = append(r.created, p)
	return nil
}
func (r *fakeRepo) ListByUser(string) ([]entities.StudyPlan, error)     { return nil, nil }
func (r *fakeRepo) FindByID(uint, string) (*entities.StudyPlan, error) { return nil, nil }
func (r *fakeRepo) Delete(uint, string) error                          { return nil }

type fakeLibrary struct{ chunks []entities.ResourceChunk }

func (l *fakeLibrary) Search(string, int) ([]entities.ResourceChunk, error) {
	return l.chunks, nil
}

func newTestSvc(c ai.Client, repo *fakeRepo, lib resourceSearcher) *PlanSvc {
	s := NewPlanService(c, rules.New(), repo, lib)
	s.now = func() time.Time { return testToday }
	s.baseDelay = time.Millisecond
	return s
}

func genInput() service.GenerateInput {
	d := testToday.AddDate(0, 0, 5)
	return service.GenerateInput{
		Title:      "exam week",
		DailyHours: 4,
		Subjects:   []entities.Subject{{SubjectID: "s1", Name: "Math", Deadline: &d}},
	}
}

func TestGenerate_AIPath(t *testing.T) {
	repo := &fakeRepo{}
	client := &fakeClient{}
	svc := newTestSvc(client, repo, nil)

	p, err := svc.Generate(context.Background(), "u1", genInput())
	require.NoError(t, err)
	assert.Equal(t, entities.PlanSourceAI, p.Source)
	assert.Equal(t, "exam week", p.Title)
	assert.Equal(t, "u1", p.UserID)
	assert.Len(t, p.Days, types.PlanDays)
	assert.Equal(t, 1, client.calls)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Math", repo.created[0].Subjects[0].Name)
}

func TestGenerate_FallbackOnInvalidOutput(t *testing.T) {
	repo := &fakeRepo{}
	client := &fakeClient{failWith: ai.ErrInvalidOutput}
	svc := newTestSvc(client, repo, nil)

	p, err := svc.Generate(context.Background(), "u1", genInput())
	require.NoError(t, err)
	assert.Equal(t, entities.PlanSourceFallback, p.Source)
	assert.Len(t, p.Days, types.PlanDays)
	assert.Equal(t, 1, client.calls, "non-rate-limit failures are not retried")
}

func TestGenerate_FallbackOnUnavailable(t *testing.T) {
	repo := &fakeRepo{}
	client := &fakeClient{failWith: ai.ErrUnavailable}
	svc := newTestSvc(client, repo, nil)

	p, err := svc.Generate(context.Background(), "u1", genInput())
	require.NoError(t, err)
	assert.Equal(t, entities.PlanSourceFallback, p.Source)
}

func TestGenerate_RetriesOnRateLimitThenSucceeds(t *testing.T) {
	repo := &fakeRepo{}
	client := &fakeClient{failWith: ai.ErrRateLimited, failFirstN: 1}
	svc := newTestSvc(client, repo, nil)

	p, err := svc.Generate(context.Background(), "u1", genInput())
	require.NoError(t, err)
	assert.Equal(t, entities.PlanSourceAI, p.Source)
	assert.Equal(t, 2, client.calls)
}

func TestGenerate_RateLimitExhaustionFallsBack(t *testing.T) {
	repo := &fakeRepo{}
	client := &fakeClient{failWith: ai.ErrRateLimited}
	svc := newTestSvc(client, repo, nil)

	p, err := svc.Generate(context.Background(), "u1", genInput())
	require.NoError(t, err)
	assert.Equal(t, entities.PlanSourceFallback, p.Source)
	assert.Equal(t, 3, client.calls, "capped attempts")
}

func TestGenerate_SaveFailureIsNonFatal(t *testing.T) {
	repo := &fakeRepo{failing: true}
	client := &fakeClient{}
	svc := newTestSvc(client, repo, nil)

	p, err := svc.Generate(context.Background(), "u1", genInput())
	require.Error(t, err)
	require.NotNil(t, p, "the plan is still returned")
	assert.Len(t, p.Days, types.PlanDays)
}

func TestGenerate_DefaultTitle(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestSvc(&fakeClient{}, repo, nil)

	in := genInput()
	in.Title = "  "
	p, err := svc.Generate(context.Background(), "u1", in)
	require.NoError(t, err)
	assert.Equal(t, "Study plan starting Jan 5, 2026", p.Title)
}

func TestGenerate_PassesResourceContext(t *testing.T) {
	repo := &fakeRepo{}
	client := &fakeClient{}
	lib := &fakeLibrary{chunks: []entities.ResourceChunk{{Text: "use spaced repetition"}}}
	svc := newTestSvc(client, repo, lib)

	_, err := svc.Generate(context.Background(), "u1", genInput())
	require.NoError(t, err)
	assert.Contains(t, client.resourceCtx, "spaced repetition")
}

func TestGenerate_DeterministicFallbackDates(t *testing.T) {
	repo := &fakeRepo{}
	client := &fakeClient{failWith: ai.ErrUnavailable}
	svc := newTestSvc(client, repo, nil)

	p, err := svc.Generate(context.Background(), "u1", genInput())
	require.NoError(t, err)
	assert.Equal(t, "Monday", p.Days[0].Day)
	assert.Equal(t, "Jan 5, 2026", p.Days[0].Date)
	assert.Equal(t, "Jan 9, 2026", p.Days[4].Date)
}
