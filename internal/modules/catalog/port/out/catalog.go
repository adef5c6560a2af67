package out

import (
	"context"

	"leseheft/internal/modules/catalog/domain"
)

// TextStore lists user-supplied texts from the data directory. Save writes
// a text back as a markdown file; it is only used by seeding.
type TextStore interface {
	List(ctx context.Context) ([]domain.Text, error)
	Save(ctx context.Context, text domain.Text) (string, error)
	Exists(ctx context.Context, text domain.Text) (bool, error)
}
