package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	// daily sweep trigger, local to Timezone
	SweepHour   int
	SweepMinute int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}

	hour, minute := parseClock(get("SWEEP_AT", "07:00"))
	smtpPort, err := strconv.Atoi(get("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Asia/Colombo"),
		DBPath:      get("DB_PATH", "farmkeep.db"),
		SweepHour:   hour,
		SweepMinute: minute,
		SMTPHost:    get("SMTP_HOST", ""),
		SMTPPort:    smtpPort,
		SMTPUser:    get("SMTP_USER", ""),
		SMTPPass:    get("SMTP_PASS", ""),
		MailFrom:    get("MAIL_FROM", "FarmKeep <no-reply@farmkeep.local>"),
	}
	log.Printf("[cfg] port=%s tz=%s db=%s sweep=%02d:%02d smtp=%s",
		cfg.Port, cfg.Timezone, cfg.DBPath, cfg.SweepHour, cfg.SweepMinute, cfg.SMTPHost)
	return cfg
}

func parseClock(s string) (int, int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 7, 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 7, 0
	}
	return h, m
}
