package service

import "github.com/xuri/excelize/v2"

type ReportService interface {
	// Workbook builds an owner's farm report: one sheet of crops, one of
	// reminders.
	Workbook(userID uint) (*excelize.File, error)
}
