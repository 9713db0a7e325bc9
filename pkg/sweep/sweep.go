package sweep

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"farmkeep/entities"
	cropRepo "farmkeep/pkg/crop/repository"
	"farmkeep/pkg/dates"
	"farmkeep/pkg/mail"
	remRepo "farmkeep/pkg/reminder/repository"
	userRepo "farmkeep/pkg/user/repository"
)

// Sweeper performs one dispatch pass: select today's pending reminders,
// claim each, render a kind-specific mail and send it. A failed send
// releases the claim so the next pass retries; it never stops the pass.
type Sweeper struct {
	reminders remRepo.ReminderRepository
	crops     cropRepo.CropRepository
	users     userRepo.UserRepository
	mailer    mail.Mailer
	clock     clockwork.Clock
	loc       *time.Location
}

func New(reminders remRepo.ReminderRepository, crops cropRepo.CropRepository, users userRepo.UserRepository, mailer mail.Mailer, clock clockwork.Clock, loc *time.Location) *Sweeper {
	return &Sweeper{reminders: reminders, crops: crops, users: users, mailer: mailer, clock: clock, loc: loc}
}

// Classify buckets a reminder by its message text.
func Classify(message string) string {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "water"):
		return entities.KindWatering
	case strings.Contains(m, "fertilizer"):
		return entities.KindFertilizer
	case strings.Contains(m, "harvest"):
		return entities.KindHarvest
	default:
		return entities.KindGeneral
	}
}

func (s *Sweeper) Run() error {
	today := dates.Midnight(s.clock.Now().In(s.loc))
	due, err := s.reminders.FindDue(today, today.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("select due reminders: %w", err)
	}
	if len(due) == 0 {
		log.Printf("[sweep] nothing due today")
		return nil
	}
	log.Printf("[sweep] %d reminder(s) due", len(due))

	for _, r := range due {
		claimed, err := s.reminders.Claim(r.ReminderID)
		if err != nil {
			log.Printf("[sweep] claim %d: %v", r.ReminderID, err)
			continue
		}
		if !claimed {
			continue // another pass got there first
		}

		kind := Classify(r.Message)
		name, cropLabel := s.resolve(&r)
		subject, body := render(kind, name, cropLabel, r.Message, r.DueDate)

		if err := s.mailer.Send(r.Email, subject, body); err != nil {
			log.Printf("[sweep] send to %s: %v", r.Email, err)
			if err := s.reminders.Release(r.ReminderID); err != nil {
				log.Printf("[sweep] release %d: %v", r.ReminderID, err)
			}
			continue
		}
		if err := s.reminders.MarkDone(r.ReminderID); err != nil {
			log.Printf("[sweep] mark done %d: %v", r.ReminderID, err)
		}
		log.Printf("[sweep] sent %s reminder to %s", kind, r.Email)
	}
	return nil
}

// resolve finds the farmer's display name and a crop label for the mail
// body. The label comes from the originating crop; rows without a crop
// reference fall back to the owner's most recently planted crop.
func (s *Sweeper) resolve(r *entities.Reminder) (string, string) {
	name := "Farmer"
	if u, err := s.users.FindByID(r.UserID); err == nil && u.Name != "" {
		name = u.Name
	}

	label := "your crop"
	if r.CropID != 0 {
		if c, err := s.crops.FindByID(r.CropID); err == nil && c.CropType != "" {
			return name, c.CropType
		}
	}
	if c, err := s.crops.LatestByUser(r.UserID); err == nil && c.CropType != "" {
		label = c.CropType
	}
	return name, label
}

func render(kind, name, cropLabel, message string, due time.Time) (string, string) {
	date := due.Format("Monday, 2 Jan 2006")

	switch kind {
	case entities.KindWatering:
		return "Reminder: Watering scheduled",
			fmt.Sprintf(`<div style="font-family: Arial; padding:20px; border-radius:8px; background:#e3f2fd;">
  <h3>Hello %s,</h3>
  <p>This is a reminder to water your %s on %s.</p>
  <p><b>Note:</b> Have irrigation ready early in the morning.</p>
  <p style="margin-top:10px; color:#555;">&mdash; FarmKeep</p>
</div>`, name, cropLabel, date)
	case entities.KindFertilizer:
		return "Reminder: Fertilizer scheduled",
			fmt.Sprintf(`<div style="font-family: Arial; padding:20px; border-radius:8px; background:#fff8e1;">
  <h3>Hello %s,</h3>
  <p>Fertilizer application for your %s is scheduled on %s.</p>
  <p><b>Tip:</b> Use the recommended amounts and protective gear.</p>
  <p style="margin-top:10px; color:#555;">&mdash; FarmKeep</p>
</div>`, name, cropLabel, date)
	case entities.KindHarvest:
		return "Reminder: Harvest scheduled",
			fmt.Sprintf(`<div style="font-family: Arial; padding:20px; border-radius:8px; background:#e8f5e9;">
  <h3>Hello %s,</h3>
  <p>Your %s harvest is scheduled on %s. Prepare tools and storage.</p>
  <p style="margin-top:10px; color:#555;">&mdash; FarmKeep</p>
</div>`, name, cropLabel, date)
	default:
		return fmt.Sprintf("Farming reminder for %s", date),
			fmt.Sprintf(`<div style="font-family: Arial; padding:20px; border-radius:8px; background:#f1f8e9;">
  <h3>Hello %s,</h3>
  <p>%s on %s</p>
</div>`, name, message, date)
	}
}
