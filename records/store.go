// Package records persists best lap times and finished race results.
package records

import (
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
)

// ErrUnknownStore is returned by Open for an unsupported backend name.
var ErrUnknownStore = errors.New("records: unknown store")

// maxStoredResults bounds the result history kept by list-based backends.
const maxStoredResults = 50

// Result is one finished race
type Result struct {
	ID         string    `json:"id" msgpack:"id"`
	FinishedAt time.Time `json:"finishedAt" msgpack:"finished_at"`
	Time       float64   `json:"time" msgpack:"time"`
	LapSplits  []float64 `json:"lapSplits" msgpack:"lap_splits"`
	Car        string    `json:"car" msgpack:"car"`
	NewRecord  bool      `json:"newRecord" msgpack:"new_record"`
}

// NewResult stamps a race result with a unique id and the finish time.
func NewResult(total float64, splits []float64, car string, newRecord bool) Result {
	return Result{
		ID:         ksuid.New().String(),
		FinishedAt: time.Now(),
		Time:       total,
		LapSplits:  splits,
		Car:        car,
		NewRecord:  newRecord,
	}
}

// Store is the get/set collaborator behind best-time persistence.
// Implementations are safe for concurrent use.
type Store interface {
	// BestTime returns the recorded best time, if any.
	BestTime() (float64, bool, error)
	SetBestTime(seconds float64) error
	SaveResult(r Result) error
	// Results returns up to limit results, newest first. A limit <= 0 returns all.
	Results(limit int) ([]Result, error)
	Close() error
}

// Open returns the named backend. dir is only used by badger; gdata picks
// the platform data directory itself.
func Open(kind, appName, dir string) (Store, error) {
	switch kind {
	case "gdata":
		return OpenGData(appName)
	case "badger":
		return OpenBadger(dir)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
	}
}

// newestFirst trims a chronological list to limit entries in reverse order.
func newestFirst(rs []Result, limit int) []Result {
	n := len(rs)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Result, 0, n)
	for i := len(rs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, rs[i])
	}
	return out
}
