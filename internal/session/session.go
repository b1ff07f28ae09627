// Package session serialises access to games shared between goroutines.
//
// Legal move generation plays each candidate on the board and takes it
// back, so two calls on one game must never interleave. A Session holds
// one mutex per game; a Registry holds many sessions under generated names.
package session

import (
	"sort"
	"strconv"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// nameAttempts bounds how often a colliding name is regenerated before a
// numeric suffix is used instead.
const nameAttempts = 8

// Session wraps a game with a mutex so it can be shared between goroutines.
type Session struct {
	ID string

	mu   sync.Mutex
	game *game.Game
}

// New wraps g in a session with the given id.
func New(id string, g *game.Game) *Session {
	return &Session{ID: id, game: g}
}

// Do runs fn with exclusive access to the game. fn must not keep g.
func (s *Session) Do(fn func(g *game.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// MovePiece calls Game.MovePiece under the session lock.
func (s *Session) MovePiece(from, to chess.Coordinate) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MovePiece(from, to)
}

// PromotePawn calls Game.PromotePawn under the session lock.
func (s *Session) PromotePawn(kind chess.PieceKind) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.PromotePawn(kind)
}

// PossibleMoves calls Game.PossibleMoves under the session lock.
func (s *Session) PossibleMoves(pos chess.Coordinate) ([]chess.Coordinate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.PossibleMoves(pos)
}

// State returns the game state.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

// Snapshot returns a copy of the board together with the side to move.
func (s *Session) Snapshot() (chess.Board, chess.Colour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Board(), s.game.Turn()
}

// FEN returns the position as a FEN string.
func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.FEN()
}

// Registry maps session ids to sessions. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	names    func() string
}

// NewRegistry creates an empty registry naming sessions like "brave-otter".
func NewRegistry() *Registry {
	return NewRegistryWithNames(func() string { return petname.Generate(2, "-") })
}

// NewRegistryWithNames creates an empty registry that draws ids from names.
func NewRegistryWithNames(names func() string) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		names:    names,
	}
}

// Create registers g under a fresh id and returns its session.
func (r *Registry) Create(g *game.Game) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := New(r.freshID(), g)
	r.sessions[s.ID] = s
	return s
}

// freshID must be called with r.mu held.
func (r *Registry) freshID() string {
	var id string
	for i := 0; i < nameAttempts; i++ {
		id = r.names()
		if _, taken := r.sessions[id]; !taken {
			return id
		}
	}
	for n := 2; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if _, taken := r.sessions[candidate]; !taken {
			return candidate
		}
	}
}

// Get returns the session registered under id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownSession, "%q", id)
	}
	return s, nil
}

// Remove forgets the session registered under id.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return errors.Wrapf(errors.ErrUnknownSession, "%q", id)
	}
	delete(r.sessions, id)
	return nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
