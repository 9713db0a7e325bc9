package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"farmkeep/entities"
	cropRepo "farmkeep/pkg/crop/repository"
	"farmkeep/pkg/crop/service"
	"farmkeep/pkg/dates"
	remRepo "farmkeep/pkg/reminder/repository"
	userRepo "farmkeep/pkg/user/repository"
)

var (
	ErrOwnerRequired = errors.New("valid user_id is required")
	ErrOwnerNotFound = errors.New("user not found")
	ErrCropNotFound  = errors.New("crop not found")
	ErrBadDateRange  = errors.New("invalid growing/harvest dates")
)

type cropService struct {
	crops     cropRepo.CropRepository
	reminders remRepo.ReminderRepository
	users     userRepo.UserRepository
	clock     clockwork.Clock
	loc       *time.Location
}

func New(crops cropRepo.CropRepository, reminders remRepo.ReminderRepository, users userRepo.UserRepository, clock clockwork.Clock, loc *time.Location) service.CropService {
	return &cropService{crops: crops, reminders: reminders, users: users, clock: clock, loc: loc}
}

func (s *cropService) today() time.Time { return dates.Midnight(s.clock.Now().In(s.loc)) }

// parseDateList drops entries that fail to parse; a supplied-but-garbage
// list resolves to empty rather than falling back to a frequency.
func (s *cropService) parseDateList(in []string) []time.Time {
	out := make([]time.Time, 0, len(in))
	for _, raw := range in {
		if t, ok := dates.ParseIn(raw, s.loc); ok {
			out = append(out, dates.Midnight(t))
		}
	}
	return out
}

// resolveDates picks the event dates for one kind: explicit list first,
// then frequency over the crop window, then whatever was already stored.
func (s *cropService) resolveDates(explicit []string, freq *int, grow, harvest time.Time, existing []time.Time) []time.Time {
	if len(explicit) > 0 {
		return s.parseDateList(explicit)
	}
	if freq != nil && *freq > 0 {
		return dates.GenerateBetween(grow, harvest, *freq)
	}
	return existing
}

func (s *cropService) Create(in service.CropInput) (*entities.Crop, error) {
	if in.UserID == 0 {
		return nil, ErrOwnerRequired
	}
	owner, err := s.users.FindByID(in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	grow, ok := dates.ParseIn(in.GrowingDate, s.loc)
	if !ok {
		return nil, ErrBadDateRange
	}
	harvest, ok := dates.ParseIn(in.HarvestDate, s.loc)
	if !ok {
		return nil, ErrBadDateRange
	}
	grow, harvest = dates.Midnight(grow), dates.Midnight(harvest)
	if grow.After(harvest) {
		return nil, ErrBadDateRange
	}

	watering := s.resolveDates(in.WateringDates, in.WateringFrequency, grow, harvest, nil)
	fertilizer := s.resolveDates(in.FertilizerDates, in.FertilizerFrequency, grow, harvest, nil)

	c := &entities.Crop{
		UserID:              in.UserID,
		CropType:            in.CropType,
		LandArea:            in.LandArea,
		SoilType:            in.SoilType,
		GrowingDate:         grow,
		HarvestDate:         harvest,
		WateringDates:       datatypes.NewJSONSlice(watering),
		FertilizerDates:     datatypes.NewJSONSlice(fertilizer),
		WateringFrequency:   in.WateringFrequency,
		FertilizerFrequency: in.FertilizerFrequency,
	}
	if err := s.crops.Create(c); err != nil {
		return nil, err
	}

	s.deriveReminders(c, owner.Email)
	return c, nil
}

func (s *cropService) Update(id uint, in service.CropInput) (*entities.Crop, error) {
	c, err := s.crops.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCropNotFound
		}
		return nil, err
	}
	owner, err := s.users.FindByID(c.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	grow, harvest := c.GrowingDate, c.HarvestDate
	if in.GrowingDate != "" {
		t, ok := dates.ParseIn(in.GrowingDate, s.loc)
		if !ok {
			return nil, ErrBadDateRange
		}
		grow = dates.Midnight(t)
	}
	if in.HarvestDate != "" {
		t, ok := dates.ParseIn(in.HarvestDate, s.loc)
		if !ok {
			return nil, ErrBadDateRange
		}
		harvest = dates.Midnight(t)
	}
	if grow.After(harvest) {
		return nil, ErrBadDateRange
	}

	watering := s.resolveDates(in.WateringDates, in.WateringFrequency, grow, harvest, c.WateringDates)
	fertilizer := s.resolveDates(in.FertilizerDates, in.FertilizerFrequency, grow, harvest, c.FertilizerDates)

	if in.CropType != "" {
		c.CropType = in.CropType
	}
	if in.LandArea != "" {
		c.LandArea = in.LandArea
	}
	if in.SoilType != "" {
		c.SoilType = in.SoilType
	}
	c.GrowingDate = grow
	c.HarvestDate = harvest
	c.WateringDates = datatypes.NewJSONSlice(watering)
	c.FertilizerDates = datatypes.NewJSONSlice(fertilizer)
	if in.WateringFrequency != nil {
		c.WateringFrequency = in.WateringFrequency
	}
	if in.FertilizerFrequency != nil {
		c.FertilizerFrequency = in.FertilizerFrequency
	}

	// purge before regenerating so the fresh set is derived from a clean
	// slate even when the crop type changed
	if err := s.reminders.DeleteByCrop(c.CropID); err != nil {
		return nil, err
	}
	if err := s.crops.Save(c); err != nil {
		return nil, err
	}

	s.deriveReminders(c, owner.Email)
	return c, nil
}

func (s *cropService) Delete(id uint) error {
	c, err := s.crops.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCropNotFound
		}
		return err
	}
	if err := s.reminders.DeleteByCrop(c.CropID); err != nil {
		return err
	}
	return s.crops.Delete(c.CropID)
}

func (s *cropService) PurgeReminders(id uint) error {
	c, err := s.crops.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCropNotFound
		}
		return err
	}
	return s.reminders.DeleteByCrop(c.CropID)
}

func (s *cropService) Get(id uint) (*entities.Crop, error) {
	c, err := s.crops.FindByID(id)
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCropNotFound
	}
	return c, err
}

func (s *cropService) List() ([]entities.Crop, error) { return s.crops.FindAll() }

func (s *cropService) ListByUser(userID uint) ([]entities.Crop, error) {
	return s.crops.FindByUser(userID)
}

// deriveReminders writes one pending reminder per future event date, due
// one day ahead of the event. Duplicates are absorbed by the store's
// unique index; a single bad insert never aborts the batch.
func (s *cropService) deriveReminders(c *entities.Crop, email string) {
	today := s.today()

	add := func(event time.Time, kind, msg string) {
		if event.IsZero() {
			return
		}
		due := dates.Midnight(event.In(s.loc)).AddDate(0, 0, -1)
		if due.Before(today) {
			return
		}
		rem := &entities.Reminder{
			UserID:  c.UserID,
			CropID:  c.CropID,
			Kind:    kind,
			Email:   email,
			Message: msg,
			DueDate: due,
			Status:  entities.ReminderPending,
		}
		if err := s.reminders.Create(rem); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return // already scheduled
			}
			log.Printf("[crop] reminder insert (%s, %s): %v", msg, due.Format("2006-01-02"), err)
		}
	}

	for _, ev := range c.WateringDates {
		add(ev, entities.KindWatering, fmt.Sprintf("Water your %s", c.CropType))
	}
	for _, ev := range c.FertilizerDates {
		add(ev, entities.KindFertilizer, fmt.Sprintf("Apply fertilizer for %s", c.CropType))
	}
	add(c.HarvestDate, entities.KindHarvest, fmt.Sprintf("Harvest your %s", c.CropType))
}
