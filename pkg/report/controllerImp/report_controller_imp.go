package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmkeep/pkg/report/service"
	"farmkeep/pkg/report/serviceImp"
)

type ReportCtrl struct{ svc service.ReportService }

func New(svc service.ReportService) *ReportCtrl { return &ReportCtrl{svc} }

func (h *ReportCtrl) Download(c echo.Context) error {
	uid, _ := strconv.Atoi(c.Param("id"))
	f, err := h.svc.Workbook(uint(uid))
	if err != nil {
		if errors.Is(err, serviceImp.ErrOwnerNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="farm-report.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	_, err = f.WriteTo(c.Response().Writer)
	return err
}
