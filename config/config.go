package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/glowbook/scheduler/utils"
)

// DayHours is a weekday's operating window in minutes since midnight.
type DayHours struct {
	Open  int
	Close int
}

// Config holds the scheduling engine settings. BusinessHours is indexed by
// weekday (Sunday = 0); a nil entry means the business is closed that day.
type Config struct {
	BusinessHours           [7]*DayHours
	SlotDurationMinutes     int
	BufferMinutes           int
	MaxAdvanceBookingDays   int
	DefaultUTCOffsetMinutes int
}

var hoursEnvKeys = [7]string{
	"HOURS_SUN", "HOURS_MON", "HOURS_TUE", "HOURS_WED",
	"HOURS_THU", "HOURS_FRI", "HOURS_SAT",
}

// Load reads the configuration from .env / environment variables. Defaults:
// Mon-Fri 09:00-17:00, Sat 10:00-14:00, Sun closed, 30-minute slots,
// 10-minute buffer, 60-day booking horizon.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cfg := &Config{
		SlotDurationMinutes:     intEnv("SLOT_DURATION_MINUTES", 30),
		BufferMinutes:           intEnv("BUFFER_MINUTES", 10),
		MaxAdvanceBookingDays:   intEnv("MAX_ADVANCE_BOOKING_DAYS", 60),
		DefaultUTCOffsetMinutes: intEnv("DEFAULT_UTC_OFFSET_MINUTES", 0),
	}
	if cfg.SlotDurationMinutes <= 0 {
		return nil, fmt.Errorf("SLOT_DURATION_MINUTES must be positive")
	}
	if cfg.BufferMinutes < 0 {
		return nil, fmt.Errorf("BUFFER_MINUTES must not be negative")
	}
	if cfg.MaxAdvanceBookingDays <= 0 {
		return nil, fmt.Errorf("MAX_ADVANCE_BOOKING_DAYS must be positive")
	}

	defaults := [7]string{"closed", "09:00-17:00", "09:00-17:00", "09:00-17:00", "09:00-17:00", "09:00-17:00", "10:00-14:00"}
	for day, key := range hoursEnvKeys {
		raw := os.Getenv(key)
		if raw == "" {
			raw = defaults[day]
		}
		hours, err := parseDayHours(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		cfg.BusinessHours[day] = hours
	}
	return cfg, nil
}

// parseDayHours accepts "HH:MM-HH:MM" or "closed".
func parseDayHours(raw string) (*DayHours, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "closed") {
		return nil, nil
	}
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid hours %q: expected HH:MM-HH:MM or closed", raw)
	}
	open, err := utils.ParseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	close, err := utils.ParseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	if close <= open {
		return nil, fmt.Errorf("invalid hours %q: close must be after open", raw)
	}
	return &DayHours{Open: open, Close: close}, nil
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using default %d", key, raw, fallback)
		return fallback
	}
	return value
}
