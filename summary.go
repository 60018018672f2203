package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"termsnake/game/manager"
	"termsnake/game/types"
)

// Summary describes a whole session once the player quits. A round still
// in progress at quit time counts in Rounds and HighScore but has no record.
type Summary struct {
	Session      string
	Rounds       int
	Finished     int
	HighScore    int
	AverageScore float64
	MedianScore  float64
	AverageRound time.Duration
	LongestRound time.Duration
	Reasons      map[types.CollisionType]int
}

func Summarize(session string, sm *manager.StateManager) Summary {
	history := sm.GetScoreHistory()
	s := Summary{
		Session:      session,
		Rounds:       sm.Rounds(),
		Finished:     len(history),
		HighScore:    sm.GetHighScore(),
		AverageScore: sm.GetAverageScore(),
		Reasons:      make(map[types.CollisionType]int),
	}
	if len(history) == 0 {
		return s
	}

	scores := make([]int, 0, len(history))
	var total time.Duration
	for _, r := range history {
		scores = append(scores, r.Score)
		s.Reasons[r.Reason]++
		d := r.Duration()
		total += d
		if d > s.LongestRound {
			s.LongestRound = d
		}
	}
	s.AverageRound = total / time.Duration(len(history))

	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		s.MedianScore = float64(scores[mid-1]+scores[mid]) / 2
	} else {
		s.MedianScore = float64(scores[mid])
	}
	return s
}

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30a14e")).
			Padding(0, 1)
)

// Render formats the summary for stdout after the screen is restored.
func (s Summary) Render() string {
	row := func(label, value string) string {
		return styleLabel.Render(fmt.Sprintf("%-14s", label)) + styleValue.Render(value)
	}
	lines := []string{
		styleTitle.Render("termsnake"),
		row("session", s.Session),
		row("rounds", fmt.Sprintf("%d (%d finished)", s.Rounds, s.Finished)),
		row("high score", fmt.Sprint(s.HighScore)),
	}
	if s.Finished > 0 {
		lines = append(lines,
			row("average score", fmt.Sprintf("%.1f", s.AverageScore)),
			row("median score", fmt.Sprintf("%.1f", s.MedianScore)),
			row("average round", s.AverageRound.Round(time.Second).String()),
			row("longest round", s.LongestRound.Round(time.Second).String()),
			row("endings", s.endings()),
		)
	}
	return styleBox.Render(strings.Join(lines, "\n"))
}

func (s Summary) endings() string {
	reasons := []types.CollisionType{
		types.WallCollision, types.SelfCollision, types.OutOfBounds, types.BoardFull,
	}
	var parts []string
	for _, r := range reasons {
		if n := s.Reasons[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", r, n))
		}
	}
	return strings.Join(parts, ", ")
}
