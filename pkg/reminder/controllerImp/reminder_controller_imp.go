package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmkeep/pkg/reminder/repository"
)

type ReminderCtrl struct{ repo repository.ReminderRepository }

func New(repo repository.ReminderRepository) *ReminderCtrl { return &ReminderCtrl{repo} }

func (h *ReminderCtrl) List(c echo.Context) error {
	if q := c.QueryParam("user_id"); q != "" {
		uid, err := strconv.Atoi(q)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad user_id"})
		}
		out, err := h.repo.FindByUser(uint(uid))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	out, err := h.repo.FindAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReminderCtrl) MarkDone(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "reminder not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.repo.MarkDone(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	rem, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rem)
}

func (h *ReminderCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "reminder deleted"})
}
