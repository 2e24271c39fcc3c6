package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Settings holds the per-user configuration. There is at most one row
// per user, created on first access.
type Settings struct {
	DefaultModel
	UserID    uuid.UUID `gorm:"uniqueIndex"`
	WeekStart string    // Name of the weekday a week starts on, e.g. "monday"
}

// weekdays maps the accepted week start values to time.Weekday.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WeekStartValues are all accepted values for Settings.WeekStart.
var WeekStartValues = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// BeforeSave defaults and validates the week start.
func (s *Settings) BeforeSave(_ *gorm.DB) error {
	if s.UserID == uuid.Nil {
		return ErrUserIDRequired
	}

	s.WeekStart = strings.ToLower(strings.TrimSpace(s.WeekStart))
	if s.WeekStart == "" {
		s.WeekStart = "monday"
	}

	if !slices.Contains(WeekStartValues, s.WeekStart) {
		return ErrWeekStartInvalid
	}

	return nil
}

// Weekday returns the configured week start as a time.Weekday.
func (s Settings) Weekday() time.Weekday {
	day, ok := weekdays[s.WeekStart]
	if !ok {
		return time.Monday
	}

	return day
}

// SettingsForUser returns the settings of a user, creating the row
// with defaults when it does not exist yet.
func SettingsForUser(db *gorm.DB, userID uuid.UUID) (Settings, error) {
	settings := Settings{UserID: userID, WeekStart: "monday"}
	err := db.Where(Settings{UserID: userID}).FirstOrCreate(&settings).Error
	return settings, err
}
