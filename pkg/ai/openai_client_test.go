package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyplan/entities"
	"studyplan/pkg/plan/types"
)

var testToday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) // a Monday

func testSubjects() []entities.Subject {
	d := testToday.AddDate(0, 0, 5)
	return []entities.Subject{{SubjectID: "s1", Name: "Math", Deadline: &d}}
}

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(b)
}

func TestOpenAI_GeneratePlan_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0]["role"])
		user := req.Messages[1]["content"]
		assert.Contains(t, user, "Math")
		assert.Contains(t, user, "Monday, Jan 5, 2026")
		assert.Contains(t, user, "Friday, Jan 9, 2026")
		assert.Contains(t, user, `"motivationalTip"`)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("Here you go:\n" + validPlanJSON())))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "sk-test", "gpt-4o-mini")
	res, err := c.GeneratePlan(context.Background(), testSubjects(), 4, testToday, "")
	require.NoError(t, err)
	assert.Len(t, res.Days, types.PlanDays)
	assert.Equal(t, "keep going", res.MotivationalTip)
}

func TestOpenAI_GeneratePlan_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "sk-test", "gpt-4o-mini")
	_, err := c.GeneratePlan(context.Background(), testSubjects(), 4, testToday, "")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestOpenAI_GeneratePlan_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "bad-key", "gpt-4o-mini")
	_, err := c.GeneratePlan(context.Background(), testSubjects(), 4, testToday, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestOpenAI_GeneratePlan_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "sk-test", "gpt-4o-mini")
	_, err := c.GeneratePlan(context.Background(), testSubjects(), 4, testToday, "")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpenAI_GeneratePlan_NetworkError(t *testing.T) {
	c := NewOpenAI("http://127.0.0.1:1", "sk-test", "gpt-4o-mini") // nothing listening
	_, err := c.GeneratePlan(context.Background(), testSubjects(), 4, testToday, "")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpenAI_GeneratePlan_MalformedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("sorry, no plan today")))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "sk-test", "gpt-4o-mini")
	_, err := c.GeneratePlan(context.Background(), testSubjects(), 4, testToday, "")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenAI_GeneratePlan_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "sk-test", "gpt-4o-mini")
	_, err := c.GeneratePlan(context.Background(), testSubjects(), 4, testToday, "")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenAI_GeneratePlan_SortsByDeadline(t *testing.T) {
	near := testToday.AddDate(0, 0, 2)
	far := testToday.AddDate(0, 0, 20)
	subjects := []entities.Subject{
		{SubjectID: "a", Name: "History", Deadline: &far},
		{SubjectID: "b", Name: "Physics"},
		{SubjectID: "c", Name: "Chemistry", Deadline: &near},
	}

	var user string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		user = req.Messages[1]["content"]
		w.Write([]byte(completionBody(validPlanJSON())))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "sk-test", "gpt-4o-mini")
	_, err := c.GeneratePlan(context.Background(), subjects, 4, testToday, "")
	require.NoError(t, err)

	chem := strings.Index(user, "Chemistry")
	hist := strings.Index(user, "History")
	phys := strings.Index(user, "Physics")
	require.True(t, chem >= 0 && hist >= 0 && phys >= 0)
	assert.Less(t, chem, hist, "nearest deadline should be listed first")
	assert.Less(t, hist, phys, "missing deadline should be listed last")
}
