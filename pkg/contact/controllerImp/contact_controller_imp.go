package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmkeep/entities"
	"farmkeep/pkg/contact/repository"
)

type ContactCtrl struct{ repo repository.ContactRepository }

func New(repo repository.ContactRepository) *ContactCtrl { return &ContactCtrl{repo} }

func (h *ContactCtrl) Submit(c echo.Context) error {
	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Message  string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.FullName == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "full_name, email and message are required"})
	}
	m := &entities.Contact{FullName: req.FullName, Email: req.Email, Message: req.Message, Status: "new"}
	if err := h.repo.Create(m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *ContactCtrl) List(c echo.Context) error {
	out, err := h.repo.FindAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContactCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	switch body.Status {
	case "new", "read", "replied":
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status must be new|read|replied"})
	}
	if err := h.repo.PatchStatus(uint(id), body.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ContactCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "contact message deleted"})
}
