package pokedex

import (
	"sync"
	"time"
)

// percentMultiplier is used to convert a ratio to percentage (0-100).
const percentMultiplier = 100

// Progress tracks how many detail records of a load have resolved.
// It is safe for concurrent use by the fan-out goroutines.
type Progress struct {
	total     int
	loaded    int
	startTime time.Time
	mu        sync.RWMutex
}

// ProgressSnapshot is an immutable copy of Progress handed to callbacks.
type ProgressSnapshot struct {
	Loaded          int
	Total           int
	PercentComplete float64
	Elapsed         time.Duration
}

// ProgressCallback receives a snapshot after every resolved detail.
// It is called from fan-out goroutines and must not block for long.
type ProgressCallback func(ProgressSnapshot)

// NewProgress starts tracking a load of total records.
func NewProgress(total int) *Progress {
	return &Progress{total: total, startTime: time.Now()}
}

// Add records one resolved detail and returns the new snapshot.
func (p *Progress) Add() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded++
	return p.snapshotLocked()
}

// Snapshot returns the current state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked()
}

// snapshotLocked requires p.mu to be held.
func (p *Progress) snapshotLocked() ProgressSnapshot {
	pct := 0.0
	if p.total > 0 {
		pct = float64(p.loaded) / float64(p.total) * percentMultiplier
	}
	return ProgressSnapshot{
		Loaded:          p.loaded,
		Total:           p.total,
		PercentComplete: pct,
		Elapsed:         time.Since(p.startTime),
	}
}
