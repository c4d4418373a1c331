package output

import (
	"fmt"
	"strings"
)

// RingBar renders a goal ring as a horizontal progress bar.
// Example: "███████░░░░░░░░░░░░░ 90/240 min (38%)"
func RingBar(current, target float64, unit string, width int) string {
	if width <= 0 {
		width = 20
	}

	var frac float64
	if target > 0 {
		frac = current / target
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case frac >= 1:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case frac >= 0.5:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	label := fmt.Sprintf("%.0f/%.0f %s (%.0f%%)", current, target, unit, frac*100)
	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(label))
}

// StreakGlyph returns the calendar glyph for a streak status string.
func StreakGlyph(status string) string {
	switch status {
	case "exceptional":
		return StyleSuccess.Render("◆")
	case "hit_target":
		return StyleSuccess.Render("●")
	case "partial":
		return StyleWarning.Render("◐")
	default:
		return StyleMuted.Render("·")
	}
}

// HeatGlyph maps a 0-100 quality score onto a shaded cell.
func HeatGlyph(quality float64) string {
	switch {
	case quality >= 85:
		return StyleSuccess.Render("▓")
	case quality >= 70:
		return StyleSuccess.Render("▒")
	case quality >= 50:
		return StyleWarning.Render("▒")
	case quality > 0:
		return StyleError.Render("░")
	default:
		return StyleMuted.Render("·")
	}
}

// timelineGlyph maps an activity type onto its timeline character.
var timelineGlyph = map[string]string{
	"sleep":          "z",
	"calendar_event": "C",
	"meals":          "m",
	"work":           "w",
	"exercise":       "e",
	"social":         "s",
	"deep_study":     "D",
	"light_study":    "d",
	"breaks":         "·",
}

// TimelineBar renders the 24-hour schedule as one row of glyphs, one per
// hour, in hour order.
func TimelineBar(hours []string) string {
	var sb strings.Builder
	for _, a := range hours {
		glyph, ok := timelineGlyph[a]
		if !ok {
			glyph = "?"
		}
		switch a {
		case "deep_study", "light_study":
			sb.WriteString(StyleSuccess.Render(glyph))
		case "sleep", "breaks":
			sb.WriteString(StyleMuted.Render(glyph))
		case "calendar_event":
			sb.WriteString(StyleError.Render(glyph))
		default:
			sb.WriteString(StyleWarning.Render(glyph))
		}
	}
	return sb.String()
}
