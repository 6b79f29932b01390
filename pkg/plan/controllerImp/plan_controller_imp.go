package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"studyplan/entities"
	"studyplan/pkg/plan/service"
	subjectrepo "studyplan/pkg/subject/repository"
)

type PlanCtrl struct {
	svc      service.PlanService
	subjects subjectrepo.SubjectRepository
}

func NewPlanCtrl(svc service.PlanService, subjects subjectrepo.SubjectRepository) *PlanCtrl {
	return &PlanCtrl{svc: svc, subjects: subjects}
}

type generateReq struct {
	Title      string   `json:"title"`
	DailyHours int      `json:"daily_hours"`
	SubjectIDs []string `json:"subject_ids"` // empty = all of the user's subjects
}

func (h *PlanCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req generateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.DailyHours < 1 || req.DailyHours > 24 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "daily_hours must be between 1 and 24"})
	}

	subjects, err := h.loadSubjects(uid, req.SubjectIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if len(req.SubjectIDs) > 0 && len(subjects) != len(req.SubjectIDs) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "subject not found"})
	}

	p, saveErr := h.svc.Generate(c.Request().Context(), uid, service.GenerateInput{
		Title:      req.Title,
		DailyHours: req.DailyHours,
		Subjects:   subjects,
	})

	resp := map[string]any{"plan": p, "saved": saveErr == nil}
	if saveErr != nil {
		resp["save_error"] = saveErr.Error()
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *PlanCtrl) loadSubjects(uid string, ids []string) ([]entities.Subject, error) {
	if len(ids) > 0 {
		return h.subjects.FindByIDs(ids, uid)
	}
	return h.subjects.ListByUser(uid)
}

func (h *PlanCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	ps, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *PlanCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	p, err := h.svc.Get(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.svc.Delete(uint(id), uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
