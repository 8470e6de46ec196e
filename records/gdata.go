package records

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const (
	bestTimeItem = "bestTime"
	resultsItem  = "results"
)

// GDataStore keeps records in the platform's per-user game data directory
type GDataStore struct {
	mu sync.Mutex
	m  *gdata.Manager
}

// OpenGData initializes the gdata manager for the given application name.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return &GDataStore{m: m}, nil
}

// BestTime loads the best time. A missing or unreadable item reads as absent.
func (s *GDataStore) BestTime() (float64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.m.LoadItem(bestTimeItem)
	if err != nil {
		return 0, false, fmt.Errorf("load best time: %w", err)
	}
	if len(data) == 0 {
		return 0, false, nil
	}

	best, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		log.Warn().Err(err).Str("item", bestTimeItem).Msg("could not parse saved best time")
		return 0, false, nil
	}
	return best, true, nil
}

func (s *GDataStore) SetBestTime(seconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := strconv.FormatFloat(seconds, 'f', -1, 64)
	if err := s.m.SaveItem(bestTimeItem, []byte(data)); err != nil {
		return fmt.Errorf("save best time: %w", err)
	}
	return nil
}

func (s *GDataStore) SaveResult(r Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := s.loadResults()
	if err != nil {
		return err
	}
	results = append(results, r)
	if over := len(results) - maxStoredResults; over > 0 {
		results = results[over:]
	}

	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("serialize results: %w", err)
	}
	if err := s.m.SaveItem(resultsItem, data); err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	return nil
}

func (s *GDataStore) Results(limit int) ([]Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := s.loadResults()
	if err != nil {
		return nil, err
	}
	return newestFirst(results, limit), nil
}

func (s *GDataStore) loadResults() ([]Result, error) {
	data, err := s.m.LoadItem(resultsItem)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		log.Warn().Err(err).Str("item", resultsItem).Msg("could not parse saved results, starting fresh")
		return nil, nil
	}
	return results, nil
}

func (s *GDataStore) Close() error {
	return nil
}
