// pkg/memcache/report_cache.go
package mem

import (
	"sync"
	"time"

	"tripcheck/internal/validation"
)

type ReportStore interface {
	Set(tripID string, report validation.Report, ttl time.Duration)

	// Get returns the cached report for tripID if not expired.
	Get(tripID string) (validation.Report, bool)

	// Delete drops a cached report, used when a trip is re-validated.
	Delete(tripID string)
}

type entry struct {
	report    validation.Report
	expiresAt time.Time
}

type ReportCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewReportCache() *ReportCache {
	return &ReportCache{
		data: make(map[string]entry),
	}
}

func (s *ReportCache) Set(tripID string, report validation.Report, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tripID] = entry{
		report:    report,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ReportCache) Get(tripID string) (validation.Report, bool) {
	s.mu.RLock()
	e, ok := s.data[tripID]
	s.mu.RUnlock()

	if !ok {
		return validation.Report{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, tripID) // cleanup expired
		s.mu.Unlock()
		return validation.Report{}, false
	}
	return e.report, true
}

func (s *ReportCache) Delete(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, tripID)
}
