// Package config provides configuration loading and defaults for studypulse.
package config

// DefaultConfigDir is the default location for studypulse configuration.
const DefaultConfigDir = "~/.config/studypulse"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "studypulse.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultSleep is the default night window (23:00 to 07:00).
var DefaultSleep = Sleep{BedtimeHour: 23, WakeHour: 7}

// DefaultMeals enables breakfast, lunch, and dinner at conventional hours.
var DefaultMeals = Meals{
	Breakfast: Meal{Enabled: true, Hour: 8},
	Lunch:     Meal{Enabled: true, Hour: 13},
	Dinner:    Meal{Enabled: true, Hour: 19},
}

// DefaultWork is a disabled weekday 9-17 schedule.
var DefaultWork = Work{
	Enabled:   false,
	Days:      []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	StartHour: 9,
	EndHour:   17,
}

// DefaultSocial is disabled protected social time on weekend evenings.
var DefaultSocial = Social{
	Enabled:   false,
	Protected: true,
	Days:      []string{"Friday", "Saturday"},
	Hours:     []int{20, 21},
}

// DefaultCalendar enables calendar blocking with no buffer hours.
var DefaultCalendar = Calendar{Enabled: true}

// DefaultGoals holds the built-in goal targets applied when the user has
// configured none: 120 minutes of study per day, 70% focus, 12 sessions
// per week.
var DefaultGoals = Goals{
	DailyStudyMinutes:  120,
	TargetFocusScore:   70,
	WeeklySessionCount: 12,
}

// DefaultEnergy is the low/high advisory band for the recent-energy signal.
var DefaultEnergy = Energy{LowThreshold: 40, HighThreshold: 75}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{Color: true, Width: 80}
