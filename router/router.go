package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	userCtrl interface {
		Register(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	cropCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		ListByUser(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		PurgeReminders(echo.Context) error
	},
	reminderCtrl interface {
		List(echo.Context) error
		MarkDone(echo.Context) error
		Delete(echo.Context) error
	},
	contactCtrl interface {
		Submit(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	reportDownload func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/users", userCtrl.Register)
	e.GET("/users", userCtrl.List)
	e.GET("/users/:id", userCtrl.Get)
	e.PUT("/users/:id", userCtrl.Update)
	e.DELETE("/users/:id", userCtrl.Delete)
	e.GET("/users/:id/crops", cropCtrl.ListByUser)
	e.GET("/users/:id/report", reportDownload)

	e.POST("/crops", cropCtrl.Create)
	e.GET("/crops", cropCtrl.List)
	e.GET("/crops/:id", cropCtrl.Get)
	e.PUT("/crops/:id", cropCtrl.Update)
	e.DELETE("/crops/:id", cropCtrl.Delete)
	e.DELETE("/crops/:id/reminders", cropCtrl.PurgeReminders)

	e.GET("/reminders", reminderCtrl.List)
	e.PATCH("/reminders/:id/done", reminderCtrl.MarkDone)
	e.DELETE("/reminders/:id", reminderCtrl.Delete)

	e.POST("/contact", contactCtrl.Submit)
	e.GET("/contact", contactCtrl.List)
	e.PATCH("/contact/:id", contactCtrl.Patch)
	e.DELETE("/contact/:id", contactCtrl.Delete)

	return e
}
