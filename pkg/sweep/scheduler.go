package sweep

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Schedule runs the sweep daily at hour:minute in loc. The returned
// scheduler owns the job; callers stop it with Shutdown.
func Schedule(s *Sweeper, hour, minute int, loc *time.Location) (gocron.Scheduler, error) {
	sch, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}
	_, err = sch.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
		gocron.NewTask(func() {
			if err := s.Run(); err != nil {
				log.Printf("[sweep] pass failed: %v", err)
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	sch.Start()
	log.Printf("[sweep] scheduled daily at %02d:%02d %s", hour, minute, loc)
	return sch, nil
}
