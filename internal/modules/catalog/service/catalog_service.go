package service

import (
	"context"
	"sort"

	"leseheft/internal/modules/catalog/domain"
	catalogout "leseheft/internal/modules/catalog/port/out"
	apperrors "leseheft/internal/platform/errors"
)

// CatalogService merges the bundled texts with user texts from the data
// directory. A user text with a known id replaces the bundled one.
type CatalogService struct {
	store    catalogout.TextStore
	builtins []domain.Text
}

func NewCatalogService(store catalogout.TextStore, builtins []domain.Text) *CatalogService {
	return &CatalogService{store: store, builtins: builtins}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Text, error) {
	merged := map[string]domain.Text{}
	for _, text := range s.builtins {
		merged[text.ID] = text
	}
	if s.store != nil {
		vaultTexts, err := s.store.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, text := range vaultTexts {
			merged[text.ID] = text
		}
	}
	texts := make([]domain.Text, 0, len(merged))
	for _, text := range merged {
		texts = append(texts, text)
	}
	sort.Slice(texts, func(i, j int) bool { return texts[i].ID < texts[j].ID })
	return texts, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.Text, error) {
	texts, err := s.List(ctx)
	if err != nil {
		return domain.Text{}, err
	}
	for _, text := range texts {
		if text.ID == id {
			return text, nil
		}
	}
	return domain.Text{}, apperrors.ErrTextNotFound
}

// Seed writes the bundled texts into the texts directory so users can edit
// them or use them as templates. Existing files are left alone.
func (s *CatalogService) Seed(ctx context.Context) (written, skipped []string, err error) {
	for _, text := range s.builtins {
		exists, err := s.store.Exists(ctx, text)
		if err != nil {
			return nil, nil, err
		}
		if exists {
			skipped = append(skipped, text.ID)
			continue
		}
		path, err := s.store.Save(ctx, text)
		if err != nil {
			return nil, nil, err
		}
		written = append(written, path)
	}
	return written, skipped, nil
}
