package controllerImp

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"studyplan/entities"
	"studyplan/pkg/subject/controller"
	"studyplan/pkg/subject/repository"
)

type subjectCtrl struct{ repo repository.SubjectRepository }

func New(repo repository.SubjectRepository) controller.SubjectController {
	return &subjectCtrl{repo: repo}
}

type createReq struct {
	Name     string  `json:"name"`
	Deadline *string `json:"deadline"` // "2006-01-02" or RFC3339
}

func (h *subjectCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	var deadline *time.Time
	if req.Deadline != nil && strings.TrimSpace(*req.Deadline) != "" {
		d, err := parseDeadline(strings.TrimSpace(*req.Deadline))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad deadline: " + err.Error()})
		}
		deadline = &d
	}

	s := &entities.Subject{
		SubjectID: uuid.NewString(),
		UserID:    uid,
		Name:      name,
		Deadline:  deadline,
	}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *subjectCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.Subject{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *subjectCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id := c.Param("id")
	if err := h.repo.Delete(id, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "subject not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func parseDeadline(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}
