package serviceImp

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	cropRepo "farmkeep/pkg/crop/repository"
	remRepo "farmkeep/pkg/reminder/repository"
	"farmkeep/pkg/report/service"
	userRepo "farmkeep/pkg/user/repository"
)

var ErrOwnerNotFound = errors.New("user not found")

type reportService struct {
	crops     cropRepo.CropRepository
	reminders remRepo.ReminderRepository
	users     userRepo.UserRepository
}

func New(crops cropRepo.CropRepository, reminders remRepo.ReminderRepository, users userRepo.UserRepository) service.ReportService {
	return &reportService{crops: crops, reminders: reminders, users: users}
}

const dateFmt = "2006-01-02"

func (s *reportService) Workbook(userID uint) (*excelize.File, error) {
	owner, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	crops, err := s.crops.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	reminders, err := s.reminders.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Crops")
	if _, err := f.NewSheet("Reminders"); err != nil {
		return nil, err
	}

	setRow := func(sheet string, row int, vals ...any) error {
		for col, v := range vals {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := setRow("Crops", 1, "Crop", "Land area", "Soil", "Growing date", "Harvest date", "Watering events", "Fertilizer events"); err != nil {
		return nil, err
	}
	for i, c := range crops {
		err := setRow("Crops", i+2,
			c.CropType, c.LandArea, c.SoilType,
			c.GrowingDate.Format(dateFmt), c.HarvestDate.Format(dateFmt),
			len(c.WateringDates), len(c.FertilizerDates))
		if err != nil {
			return nil, err
		}
	}

	if err := setRow("Reminders", 1, "Due date", "Kind", "Message", "Status"); err != nil {
		return nil, err
	}
	for i, r := range reminders {
		err := setRow("Reminders", i+2,
			r.DueDate.Format(dateFmt), r.Kind, r.Message, r.Status)
		if err != nil {
			return nil, err
		}
	}

	f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Farm report for %s", owner.Name),
		Creator: "FarmKeep",
	})
	return f, nil
}
