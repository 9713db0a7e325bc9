package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmkeep/pkg/crop/service"
	"farmkeep/pkg/crop/serviceImp"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

func status(err error) int {
	switch {
	case errors.Is(err, serviceImp.ErrOwnerRequired), errors.Is(err, serviceImp.ErrBadDateRange):
		return http.StatusBadRequest
	case errors.Is(err, serviceImp.ErrOwnerNotFound), errors.Is(err, serviceImp.ErrCropNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *CropCtrl) Create(c echo.Context) error {
	var in service.CropInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, err := h.svc.Create(in)
	if err != nil {
		return c.JSON(status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, crop)
}

func (h *CropCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var in service.CropInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, err := h.svc.Update(uint(id), in)
	if err != nil {
		return c.JSON(status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uint(id)); err != nil {
		return c.JSON(status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "crop and associated reminders deleted"})
}

func (h *CropCtrl) PurgeReminders(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.PurgeReminders(uint(id)); err != nil {
		return c.JSON(status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "reminders deleted"})
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	crop, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) ListByUser(c echo.Context) error {
	uid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.svc.ListByUser(uint(uid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
