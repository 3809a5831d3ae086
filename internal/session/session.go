// Package session provides a mutex-guarded wrapper around a game history so
// collaborators driving concurrent connections don't each have to reinvent
// the critical section around one round of play.
package session

import (
	"sync"

	"github.com/lbarnes/chessd/internal/chess"
	"github.com/lbarnes/chessd/internal/config"
	"github.com/lbarnes/chessd/internal/history"
	"github.com/lbarnes/chessd/internal/round"
)

// Session serializes access to a single game's history behind a
// sync.RWMutex: Play takes the write lock for the whole round, Current and
// CountRepetitions take the read lock for a consistent snapshot.
type Session struct {
	h  *history.History
	mu sync.RWMutex
}

// New starts a fresh session at the standard opening, applying cfg's Zobrist
// seed and debug audit setting to the underlying history.
func New(cfg config.Config) *Session {
	return &Session{h: history.NewFromConfig(cfg)}
}

// Play submits one operation under the write lock.
func (s *Session) Play(op chess.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return round.Play(s.h, op)
}

// Current returns a snapshot of the tail entry under the read lock.
func (s *Session) Current() (history.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.h.Current()
}

// CountRepetitions counts repetitions of bs under the read lock.
func (s *Session) CountRepetitions(bs chess.BoardState, hash uint64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.h.CountBoardStateRepetition(bs, hash)
}
