package manager

import (
	"time"

	"termsnake/game/types"
)

// RoundRecord is the result of one finished round.
type RoundRecord struct {
	Score     int
	Length    int
	Reason    types.CollisionType
	StartTime time.Time
	EndTime   time.Time
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps score bookkeeping for the session. Nothing outlives
// the process.
type StateManager struct {
	score      int
	highScore  int
	rounds     int
	roundStart time.Time
	history    []RoundRecord
	now        func() time.Time
}

func NewStateManager() *StateManager {
	return NewStateManagerWithClock(time.Now)
}

// NewStateManagerWithClock stamps rounds with now instead of the wall clock.
func NewStateManagerWithClock(now func() time.Time) *StateManager {
	sm := &StateManager{now: now}
	sm.StartRound()
	return sm
}

// StartRound zeroes the running score.
func (sm *StateManager) StartRound() {
	sm.rounds++
	sm.score = 0
	sm.roundStart = sm.now()
}

// AddPoint records an eaten apple.
func (sm *StateManager) AddPoint() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// EndRound appends the finished round to the history.
func (sm *StateManager) EndRound(length int, reason types.CollisionType) RoundRecord {
	rec := RoundRecord{
		Score:     sm.score,
		Length:    length,
		Reason:    reason,
		StartTime: sm.roundStart,
		EndTime:   sm.now(),
	}
	sm.history = append(sm.history, rec)
	return rec
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// Rounds is the number of rounds started so far, including the current one.
func (sm *StateManager) Rounds() int {
	return sm.rounds
}

func (sm *StateManager) GetScoreHistory() []RoundRecord {
	out := make([]RoundRecord, len(sm.history))
	copy(out, sm.history)
	return out
}

func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.history {
		total += r.Score
	}
	return float64(total) / float64(len(sm.history))
}
