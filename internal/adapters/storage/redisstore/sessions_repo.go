package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rimuy-Amaya/Catkuro/internal/domain/sessions"
)

// ErrNotFound reexporta el sentinel del puerto: un id ausente se reporta
// igual que en el store en memoria, las fallas de conexión se propagan
// envueltas y terminan en el branch de error interno del handler.
var ErrNotFound = sessions.ErrNotFound

const (
	keyPrefix = "catkuro:session:"

	// Las sesiones son efímeras por definición; un día de TTL sobra para
	// una interacción completa y evita basura acumulada.
	defaultTTL = 24 * time.Hour
)

type sessionsRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSessionsRepo guarda las sesiones en Redis con TTL. Útil para que una
// sesión sobreviva reinicios del proceso; se activa con REDIS_ADDR.
func NewSessionsRepo(addr string) sessions.Repository {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &sessionsRepo{rdb: rdb, ttl: defaultTTL}
}

func key(id string) string { return keyPrefix + id }

func (r *sessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	if s.ID == "" {
		return errors.New("session id required")
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	ok, err := r.rdb.SetNX(ctx, key(s.ID), b, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return errors.New("session already exists")
	}
	return nil
}

func (r *sessionsRepo) Update(ctx context.Context, s sessions.Session) error {
	if s.ID == "" {
		return errors.New("session id required")
	}
	if _, err := r.GetByID(ctx, s.ID); err != nil {
		return err
	}

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	// El TTL se renueva en cada paso de la interacción.
	if err := r.rdb.Set(ctx, key(s.ID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *sessionsRepo) GetByID(ctx context.Context, id string) (sessions.Session, error) {
	raw, err := r.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return sessions.Session{}, ErrNotFound
		}
		return sessions.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var s sessions.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return sessions.Session{}, err
	}
	return s, nil
}

func (r *sessionsRepo) Delete(ctx context.Context, id string) error {
	n, err := r.rdb.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
