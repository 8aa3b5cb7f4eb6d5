package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Rimuy-Amaya/Catkuro/internal/domain/sessions"
)

// ErrNotFound reexporta el sentinel del puerto: el service lo deja pasar
// sin traducir.
var ErrNotFound = sessions.ErrNotFound

type sessionsRepo struct {
	mu   sync.RWMutex
	byID map[string]sessions.Session
}

// NewSessionsRepo es el store por defecto: un mapa en memoria, suficiente
// para el uso de un solo dueño.
func NewSessionsRepo() sessions.Repository {
	return &sessionsRepo{
		byID: make(map[string]sessions.Session),
	}
}

func (r *sessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("session already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sessionsRepo) Update(ctx context.Context, s sessions.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sessionsRepo) GetByID(ctx context.Context, id string) (sessions.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return sessions.Session{}, ErrNotFound
	}
	return s, nil
}

func (r *sessionsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
