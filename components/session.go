package components

import "github.com/yohamta/donburi"

// RaceOutcome is the terminal result of a finished race
type RaceOutcome int

const (
	OutcomeNone RaceOutcome = iota
	OutcomeRaceComplete
	OutcomeNewRecord
)

func (o RaceOutcome) String() string {
	switch o {
	case OutcomeRaceComplete:
		return "race-complete"
	case OutcomeNewRecord:
		return "new-record"
	default:
		return "none"
	}
}

// SessionData is the race state machine shared by all systems
type SessionData struct {
	Running    bool
	Elapsed    float64 // seconds since race start
	Lap        int     // 1-based
	MaxLaps    int
	BestTime   float64
	HasBest    bool
	StyleIndex int

	// LapSplits holds the duration of each completed lap
	LapSplits []float64
	LapStart  float64
	Outcome   RaceOutcome

	// SkidSeq numbers skid marks in spawn order
	SkidSeq uint64
}

var Session = donburi.NewComponentType[SessionData]()

// Finished reports whether the last race ran to completion.
func (s *SessionData) Finished() bool {
	return !s.Running && s.Outcome != OutcomeNone
}

// DisplayLap clamps the lap counter for HUD display after the final lap.
func (s *SessionData) DisplayLap() int {
	if s.Lap > s.MaxLaps {
		return s.MaxLaps
	}
	return s.Lap
}
