package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level studypulse configuration.
type Config struct {
	Preferences Preferences `mapstructure:"preferences"`
	Output      Output      `mapstructure:"output"`
}

// Preferences are the user's schedule constraints and goals. They are
// read-only inputs to the planner and goal-ring computation; malformed or
// absent fields fall back to the documented defaults rather than failing.
type Preferences struct {
	Sleep    Sleep      `mapstructure:"sleep"`
	Meals    Meals      `mapstructure:"meals"`
	Work     Work       `mapstructure:"work"`
	Exercise []HourSpan `mapstructure:"exercise"`
	Social   Social     `mapstructure:"social"`
	Calendar Calendar   `mapstructure:"calendar"`
	Goals    Goals      `mapstructure:"goals"`
	Energy   Energy     `mapstructure:"energy"`

	// StudyPlan maps weekday names ("Monday"...) to planned study minutes.
	StudyPlan map[string]int `mapstructure:"study_plan"`

	// Objective is the user's stated long-term goal, used by the plan
	// summary when no dominant tag exists for the day.
	Objective string `mapstructure:"objective"`
}

// Sleep is the nightly sleep window. The window may wrap midnight
// (bedtime 23, wake 7).
type Sleep struct {
	BedtimeHour int `mapstructure:"bedtime_hour"`
	WakeHour    int `mapstructure:"wake_hour"`
}

// Covers reports whether the given hour of day falls inside the window.
func (s Sleep) Covers(hour int) bool {
	if s.BedtimeHour == s.WakeHour {
		return false
	}
	if s.BedtimeHour < s.WakeHour {
		return hour >= s.BedtimeHour && hour < s.WakeHour
	}
	// Wraps midnight.
	return hour >= s.BedtimeHour || hour < s.WakeHour
}

// Meal is one enabled/disabled meal slot.
type Meal struct {
	Enabled bool `mapstructure:"enabled"`
	Hour    int  `mapstructure:"hour"`
}

// Meals are the three configurable meal slots.
type Meals struct {
	Breakfast Meal `mapstructure:"breakfast"`
	Lunch     Meal `mapstructure:"lunch"`
	Dinner    Meal `mapstructure:"dinner"`
}

// All returns the meal slots in day order.
func (m Meals) All() []Meal {
	return []Meal{m.Breakfast, m.Lunch, m.Dinner}
}

// Work is the user's work schedule.
type Work struct {
	Enabled bool `mapstructure:"enabled"`

	// Days lists work weekday names.
	Days []string `mapstructure:"days"`

	StartHour int `mapstructure:"start_hour"`
	EndHour   int `mapstructure:"end_hour"`

	// AllowStudy leaves work hours open for study allocation.
	AllowStudy bool `mapstructure:"allow_study"`
}

// HourSpan is a half-open [StartHour, EndHour) block of the day.
type HourSpan struct {
	StartHour int `mapstructure:"start_hour"`
	EndHour   int `mapstructure:"end_hour"`
}

// Social is the protected social-time preference.
type Social struct {
	Enabled   bool     `mapstructure:"enabled"`
	Protected bool     `mapstructure:"protected"`
	Days      []string `mapstructure:"days"`
	Hours     []int    `mapstructure:"hours"`
}

// Calendar is the calendar-integration preference.
type Calendar struct {
	Enabled bool `mapstructure:"enabled"`

	// BufferBeforeHours and BufferAfterHours expand each event by whole
	// hours on either side.
	BufferBeforeHours int `mapstructure:"buffer_before_hours"`
	BufferAfterHours  int `mapstructure:"buffer_after_hours"`
}

// Goals are the user's personal targets.
type Goals struct {
	DailyStudyMinutes  int     `mapstructure:"daily_study_minutes"`
	TargetFocusScore   float64 `mapstructure:"target_focus_score"`
	WeeklySessionCount int     `mapstructure:"weekly_session_count"`
}

// Energy is the low/high band for the recent-energy advisory.
type Energy struct {
	LowThreshold  float64 `mapstructure:"low_threshold"`
	HighThreshold float64 `mapstructure:"high_threshold"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("preferences.sleep.bedtime_hour", DefaultSleep.BedtimeHour)
	v.SetDefault("preferences.sleep.wake_hour", DefaultSleep.WakeHour)
	v.SetDefault("preferences.meals.breakfast.enabled", DefaultMeals.Breakfast.Enabled)
	v.SetDefault("preferences.meals.breakfast.hour", DefaultMeals.Breakfast.Hour)
	v.SetDefault("preferences.meals.lunch.enabled", DefaultMeals.Lunch.Enabled)
	v.SetDefault("preferences.meals.lunch.hour", DefaultMeals.Lunch.Hour)
	v.SetDefault("preferences.meals.dinner.enabled", DefaultMeals.Dinner.Enabled)
	v.SetDefault("preferences.meals.dinner.hour", DefaultMeals.Dinner.Hour)
	v.SetDefault("preferences.work.enabled", DefaultWork.Enabled)
	v.SetDefault("preferences.work.days", DefaultWork.Days)
	v.SetDefault("preferences.work.start_hour", DefaultWork.StartHour)
	v.SetDefault("preferences.work.end_hour", DefaultWork.EndHour)
	v.SetDefault("preferences.social.enabled", DefaultSocial.Enabled)
	v.SetDefault("preferences.social.protected", DefaultSocial.Protected)
	v.SetDefault("preferences.social.days", DefaultSocial.Days)
	v.SetDefault("preferences.social.hours", DefaultSocial.Hours)
	v.SetDefault("preferences.calendar.enabled", DefaultCalendar.Enabled)
	v.SetDefault("preferences.calendar.buffer_before_hours", DefaultCalendar.BufferBeforeHours)
	v.SetDefault("preferences.calendar.buffer_after_hours", DefaultCalendar.BufferAfterHours)
	v.SetDefault("preferences.goals.daily_study_minutes", DefaultGoals.DailyStudyMinutes)
	v.SetDefault("preferences.goals.target_focus_score", DefaultGoals.TargetFocusScore)
	v.SetDefault("preferences.goals.weekly_session_count", DefaultGoals.WeeklySessionCount)
	v.SetDefault("preferences.energy.low_threshold", DefaultEnergy.LowThreshold)
	v.SetDefault("preferences.energy.high_threshold", DefaultEnergy.HighThreshold)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Goal targets must stay usable even when the file zeroes them out.
	if cfg.Preferences.Goals.TargetFocusScore <= 0 {
		cfg.Preferences.Goals.TargetFocusScore = DefaultGoals.TargetFocusScore
	}
	if cfg.Preferences.Energy.HighThreshold <= cfg.Preferences.Energy.LowThreshold {
		cfg.Preferences.Energy = DefaultEnergy
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
