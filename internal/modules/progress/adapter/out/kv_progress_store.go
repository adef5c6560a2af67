package out

import (
	"context"
	"encoding/json"
	"fmt"

	"leseheft/internal/modules/progress/domain"
	progressout "leseheft/internal/modules/progress/port/out"
	apperrors "leseheft/internal/platform/errors"
	"leseheft/internal/platform/kv"
)

const (
	keySessions = "sessions"
	keyStats    = "stats"
	keyCurrent  = "current-session"
)

// KVProgressStore keeps the three progress records as JSON documents in a
// flat key-value store. Malformed payloads fall back to defaults instead
// of surfacing an error; a broken record must never crash the trainer.
type KVProgressStore struct {
	store kv.Store
}

func NewKVProgressStore(store kv.Store) progressout.Store {
	return &KVProgressStore{store: store}
}

// Initialize fills in missing records with their zero state. Existing
// records are never overwritten, so it is safe to call repeatedly.
func (s *KVProgressStore) Initialize(_ context.Context) error {
	if _, ok, err := s.store.Get(keySessions); err != nil {
		return err
	} else if !ok {
		if err := s.store.Set(keySessions, "[]"); err != nil {
			return err
		}
	}
	if _, ok, err := s.store.Get(keyStats); err != nil {
		return err
	} else if !ok {
		payload, err := json.Marshal(domain.ZeroStats())
		if err != nil {
			return fmt.Errorf("marshal zero stats: %w", err)
		}
		if err := s.store.Set(keyStats, string(payload)); err != nil {
			return err
		}
	}
	return nil
}

func (s *KVProgressStore) ListSessions(_ context.Context) ([]domain.CompletedSession, error) {
	payload, ok, err := s.store.Get(keySessions)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.CompletedSession{}, nil
	}
	var sessions []domain.CompletedSession
	if err := json.Unmarshal([]byte(payload), &sessions); err != nil {
		return []domain.CompletedSession{}, nil
	}
	return sessions, nil
}

func (s *KVProgressStore) AppendSession(ctx context.Context, session domain.CompletedSession) error {
	sessions, err := s.ListSessions(ctx)
	if err != nil {
		return err
	}
	sessions = append(sessions, session)
	payload, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}
	return s.store.Set(keySessions, string(payload))
}

func (s *KVProgressStore) LoadStats(_ context.Context) (domain.Stats, error) {
	payload, ok, err := s.store.Get(keyStats)
	if err != nil {
		return domain.Stats{}, err
	}
	if !ok {
		return domain.ZeroStats(), nil
	}
	stats := domain.ZeroStats()
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		return domain.ZeroStats(), nil
	}
	if stats.TextsCompleted == nil {
		stats.TextsCompleted = []string{}
	}
	return stats, nil
}

func (s *KVProgressStore) SaveStats(_ context.Context, stats domain.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	return s.store.Set(keyStats, string(payload))
}

func (s *KVProgressStore) LoadCurrent(_ context.Context) (domain.CurrentSession, error) {
	payload, ok, err := s.store.Get(keyCurrent)
	if err != nil {
		return domain.CurrentSession{}, err
	}
	if !ok {
		return domain.CurrentSession{}, apperrors.ErrNoCurrentSession
	}
	current := domain.CurrentSession{}
	if err := json.Unmarshal([]byte(payload), &current); err != nil {
		return domain.CurrentSession{}, apperrors.ErrNoCurrentSession
	}
	if current.TextID == "" {
		return domain.CurrentSession{}, apperrors.ErrNoCurrentSession
	}
	return current, nil
}

func (s *KVProgressStore) SaveCurrent(_ context.Context, current domain.CurrentSession) error {
	payload, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal current session: %w", err)
	}
	return s.store.Set(keyCurrent, string(payload))
}

func (s *KVProgressStore) ClearCurrent(_ context.Context) error {
	return s.store.Remove(keyCurrent)
}

// RemoveAll clears every record. The next read returns zero-state
// defaults; there is no undo.
func (s *KVProgressStore) RemoveAll(_ context.Context) error {
	for _, key := range []string{keySessions, keyStats, keyCurrent} {
		if err := s.store.Remove(key); err != nil {
			return err
		}
	}
	return nil
}
