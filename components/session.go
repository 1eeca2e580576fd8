package components

import "github.com/yohamta/donburi"

// SessionState is the top-level play state.
type SessionState int

const (
	SessionRunning SessionState = iota
	SessionPaused
)

func (s SessionState) String() string {
	switch s {
	case SessionRunning:
		return "running"
	case SessionPaused:
		return "paused"
	}
	return "unknown"
}

// SessionData holds the counters of one play-through.
type SessionData struct {
	State             SessionState
	ElapsedFrames     int
	CanteensCollected int // In the current level
	CanteensTotal     int // In the current level
	Distance          float64
	LevelsCompleted   int
	Deaths            int
}

var Session = donburi.NewComponentType[SessionData]()
