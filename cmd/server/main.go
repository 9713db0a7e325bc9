package main

import (
	"log"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmkeep/config"
	"farmkeep/database"
	"farmkeep/router"

	// Users
	userCtrlImp "farmkeep/pkg/user/controllerImp"
	userRepoImp "farmkeep/pkg/user/repositoryImp"

	// Crops + reminder derivation
	cropCtrlImp "farmkeep/pkg/crop/controllerImp"
	cropRepoImp "farmkeep/pkg/crop/repositoryImp"
	cropSvcImp "farmkeep/pkg/crop/serviceImp"

	// Reminders
	remCtrlImp "farmkeep/pkg/reminder/controllerImp"
	remRepoImp "farmkeep/pkg/reminder/repositoryImp"

	// Contact
	contactCtrlImp "farmkeep/pkg/contact/controllerImp"
	contactRepoImp "farmkeep/pkg/contact/repositoryImp"

	// Reports
	reportCtrlImp "farmkeep/pkg/report/controllerImp"
	reportSvcImp "farmkeep/pkg/report/serviceImp"

	// Health
	healthCtrlImp "farmkeep/pkg/health/controllerImp"

	"farmkeep/pkg/mail"
	"farmkeep/pkg/sweep"
)

func main() {
	// 1) Config
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("load timezone %q: %v", cfg.Timezone, err)
	}

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Mailer (mock fallback when SMTP is not configured)
	var mailer mail.Mailer
	if cfg.SMTPHost != "" && cfg.SMTPUser != "" {
		mailer = mail.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	} else {
		mailer = mail.NewMock()
	}

	// 5) Repos
	uRepo := userRepoImp.New(db)
	cRepo := cropRepoImp.New(db)
	rRepo := remRepoImp.New(db)
	ctRepo := contactRepoImp.New(db)

	// 6) Services + controllers
	clock := clockwork.NewRealClock()
	cSvc := cropSvcImp.New(cRepo, rRepo, uRepo, clock, loc)
	repSvc := reportSvcImp.New(cRepo, rRepo, uRepo)

	uCtrl := userCtrlImp.New(uRepo)
	cCtrl := cropCtrlImp.New(cSvc)
	rCtrl := remCtrlImp.New(rRepo)
	ctCtrl := contactCtrlImp.New(ctRepo)
	repCtrl := reportCtrlImp.New(repSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Dispatch sweep, daily at the configured local time
	sw := sweep.New(rRepo, cRepo, uRepo, mailer, clock, loc)
	sch, err := sweep.Schedule(sw, cfg.SweepHour, cfg.SweepMinute, loc)
	if err != nil {
		log.Fatalf("schedule sweep: %v", err)
	}
	defer func() {
		if err := sch.Shutdown(); err != nil {
			log.Printf("[sweep] shutdown: %v", err)
		}
	}()

	// 8) Router
	r := router.New(e, uCtrl, cCtrl, rCtrl, ctCtrl, repCtrl.Download, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
