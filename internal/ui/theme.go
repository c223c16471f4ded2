package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pookie4u theme (CLI + TUI).

const (
	IconHeart   = "💖"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconLock    = "🔒"
	IconWarn    = "⚠️"
	IconError   = "💔"
	IconScroll  = "📜"
	IconReset   = "🧹"
)

var (
	cPrimary = lipgloss.Color("205") // pink
	cAccent  = lipgloss.Color("212") // light pink
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StreakText renders a streak count, highlighting live streaks.
func StreakText(days int) string {
	switch {
	case days <= 0:
		return Muted.Render("no streak")
	case days == 1:
		return Warn.Render(IconFire + " 1 day")
	default:
		return Warn.Render(fmt.Sprintf("%s %d days", IconFire, days))
	}
}

// ProgressBar draws an ASCII bar filled to percent (0..100).
func ProgressBar(percent int, width int) string {
	if width <= 3 {
		width = 3
	}
	percent = max(0, min(percent, 100))
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func EarnedText(earned bool) string {
	if earned {
		return Good.Render("earned")
	}
	return Muted.Render(IconLock + " locked")
}
