package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"leseheft/internal/modules/progress/domain"
	progressout "leseheft/internal/modules/progress/port/out"
	"leseheft/internal/platform/clock"
	apperrors "leseheft/internal/platform/errors"
	"leseheft/internal/platform/id"
)

// RecorderService is the only writer of the progress records. Every
// mutation is a read-modify-write of a whole record; with one user and
// one process that is all the transactional discipline needed.
type RecorderService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     progressout.Store
	projector progressout.HistoryProjector
}

func NewRecorderService(clk clock.Clock, idGen id.Generator, store progressout.Store, projector progressout.HistoryProjector) *RecorderService {
	return &RecorderService{clock: clk, idGen: idGen, store: store, projector: projector}
}

func (s *RecorderService) RecordCompletion(ctx context.Context, textID, textTitle, textType string, totalQuestions int, answers []domain.Answer, score int) (domain.CompletedSession, error) {
	if err := s.store.Initialize(ctx); err != nil {
		return domain.CompletedSession{}, err
	}
	session := domain.CompletedSession{
		ID:             s.idGen.New(),
		TextID:         textID,
		TextTitle:      textTitle,
		TextType:       textType,
		Answers:        answers,
		Score:          score,
		CompletedAt:    s.clock.Now(),
		TotalQuestions: totalQuestions,
		CorrectAnswers: domain.CorrectCount(answers),
		TotalTime:      domain.TotalTime(answers),
	}
	if err := s.store.AppendSession(ctx, session); err != nil {
		return domain.CompletedSession{}, err
	}

	stats, err := s.store.LoadStats(ctx)
	if err != nil {
		return domain.CompletedSession{}, err
	}
	stats.Apply(session, s.clock.Now())
	if err := s.store.SaveStats(ctx, stats); err != nil {
		return domain.CompletedSession{}, err
	}

	if err := s.store.ClearCurrent(ctx); err != nil {
		return domain.CompletedSession{}, err
	}

	// The history index is derived; failing to update it must not lose
	// the session that is already persisted.
	if s.projector != nil {
		_ = s.projector.UpsertSession(ctx, session)
	}
	return session, nil
}

func (s *RecorderService) Sessions(ctx context.Context) ([]domain.CompletedSession, error) {
	return s.store.ListSessions(ctx)
}

func (s *RecorderService) Recent(ctx context.Context, limit int) ([]domain.CompletedSession, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CompletedAt.After(sessions[j].CompletedAt)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (s *RecorderService) ForText(ctx context.Context, textID string) ([]domain.CompletedSession, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	matched := []domain.CompletedSession{}
	for _, session := range sessions {
		if session.TextID == textID {
			matched = append(matched, session)
		}
	}
	return matched, nil
}

func (s *RecorderService) BestScore(ctx context.Context, textID string) (int, error) {
	sessions, err := s.ForText(ctx, textID)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, session := range sessions {
		if session.Score > best {
			best = session.Score
		}
	}
	return best, nil
}

func (s *RecorderService) HasCompleted(ctx context.Context, textID string) (bool, error) {
	stats, err := s.store.LoadStats(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range stats.TextsCompleted {
		if id == textID {
			return true, nil
		}
	}
	return false, nil
}

func (s *RecorderService) Stats(ctx context.Context) (domain.Stats, error) {
	return s.store.LoadStats(ctx)
}

func (s *RecorderService) SaveCurrent(ctx context.Context, current domain.CurrentSession) error {
	return s.store.SaveCurrent(ctx, current)
}

func (s *RecorderService) LoadCurrent(ctx context.Context) (domain.CurrentSession, error) {
	return s.store.LoadCurrent(ctx)
}

func (s *RecorderService) ClearCurrent(ctx context.Context) error {
	return s.store.ClearCurrent(ctx)
}

type exportPayload struct {
	Sessions       []domain.CompletedSession `json:"sessions"`
	Stats          domain.Stats              `json:"stats"`
	CurrentSession *domain.CurrentSession    `json:"currentSession"`
	ExportedAt     time.Time                 `json:"exportedAt"`
}

// ExportAll serializes every persisted record into one pretty-printed
// JSON document.
func (s *RecorderService) ExportAll(ctx context.Context) (string, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return "", err
	}
	stats, err := s.store.LoadStats(ctx)
	if err != nil {
		return "", err
	}
	payload := exportPayload{
		Sessions:   sessions,
		Stats:      stats,
		ExportedAt: s.clock.Now(),
	}
	if current, err := s.store.LoadCurrent(ctx); err == nil {
		payload.CurrentSession = &current
	} else if !errors.Is(err, apperrors.ErrNoCurrentSession) {
		return "", err
	}
	rendered, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	return string(rendered), nil
}

func (s *RecorderService) ClearAll(ctx context.Context) error {
	if err := s.store.RemoveAll(ctx); err != nil {
		return err
	}
	if s.projector != nil {
		if err := s.projector.Reset(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Reindex rebuilds the history index from the persisted session list and
// returns the number of sessions projected.
func (s *RecorderService) Reindex(ctx context.Context) (int, error) {
	if s.projector == nil {
		return 0, nil
	}
	if err := s.projector.Reset(ctx); err != nil {
		return 0, err
	}
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return 0, err
	}
	for _, session := range sessions {
		if err := s.projector.UpsertSession(ctx, session); err != nil {
			return 0, err
		}
	}
	return len(sessions), nil
}
