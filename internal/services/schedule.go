package services

import (
	"sync"
	"time"
)

// ScheduleService holds the optional advertised exam start time. It is
// advisory metadata for the UI; the attempt engine never consults it.
type ScheduleService struct {
	mu        sync.RWMutex
	startTime *time.Time
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

// Set parses the admin-supplied "2006-01-02T15:04" timestamp.
func (s *ScheduleService) Set(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		return time.Time{}, err
	}

	s.mu.Lock()
	s.startTime = &t
	s.mu.Unlock()
	return t, nil
}

// Get returns the scheduled start time, if one has been set.
func (s *ScheduleService) Get() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.startTime == nil {
		return time.Time{}, false
	}
	return *s.startTime, true
}
