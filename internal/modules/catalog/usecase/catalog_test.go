package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	catalogout "leseheft/internal/modules/catalog/adapter/out"
	"leseheft/internal/modules/catalog/service"
	"leseheft/internal/modules/catalog/usecase"
	apperrors "leseheft/internal/platform/errors"
)

func TestListCoversAllTextTypesAndGetReturnsQuestions(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewCatalogService(
		catalogout.NewVaultTextStore(t.TempDir()),
		catalogout.BuiltinTexts(),
	))

	texts, err := uc.ListTexts(context.Background())
	if err != nil {
		t.Fatalf("list texts: %v", err)
	}
	seen := map[string]bool{}
	for _, text := range texts {
		seen[text.Type] = true
		if text.Level != "A2" {
			t.Fatalf("text %s has level %q", text.ID, text.Level)
		}
		if text.QuestionCount == 0 {
			t.Fatalf("text %s has no questions", text.ID)
		}
	}
	for _, want := range []string{"email", "notice", "article", "advertisement", "letter"} {
		if !seen[want] {
			t.Fatalf("catalog is missing text type %s", want)
		}
	}

	detail, err := uc.GetText(context.Background(), "email-001")
	if err != nil {
		t.Fatalf("get text: %v", err)
	}
	if len(detail.Questions) != 3 || detail.Content == "" {
		t.Fatalf("unexpected detail: %d questions, content %d bytes", len(detail.Questions), len(detail.Content))
	}
	for _, q := range detail.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Fatalf("question %s correct answer out of bounds", q.ID)
		}
	}

	if _, err := uc.GetText(context.Background(), "missing"); err != apperrors.ErrTextNotFound {
		t.Fatalf("expected ErrTextNotFound, got %v", err)
	}
	if _, err := uc.GetText(context.Background(), "  "); err != apperrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeedWritesFilesOnceAndVaultOverridesBuiltins(t *testing.T) {
	t.Parallel()
	textsDir := t.TempDir()
	uc := usecase.NewInteractor(service.NewCatalogService(
		catalogout.NewVaultTextStore(textsDir),
		catalogout.BuiltinTexts(),
	))

	seeded, err := uc.Seed(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(seeded.Written) != 5 || len(seeded.Skipped) != 0 {
		t.Fatalf("expected 5 written on first seed, got %d written %d skipped", len(seeded.Written), len(seeded.Skipped))
	}

	again, err := uc.Seed(context.Background())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(again.Written) != 0 || len(again.Skipped) != 5 {
		t.Fatalf("seed must be idempotent, got %d written %d skipped", len(again.Written), len(again.Skipped))
	}

	// Edit a seeded file; the edited title must win over the builtin.
	path := filepath.Join(textsDir, "email-001.md")
	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read seeded file: %v", err)
	}
	edited := strings.Replace(string(payload), "Einladung zur Geburtstagsfeier", "Einladung zur Party", 1)
	if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
		t.Fatalf("write edited file: %v", err)
	}

	detail, err := uc.GetText(context.Background(), "email-001")
	if err != nil {
		t.Fatalf("get edited text: %v", err)
	}
	if detail.Title != "Einladung zur Party" {
		t.Fatalf("vault text must override builtin, got title %q", detail.Title)
	}
}

func TestListSkipsMalformedTextFiles(t *testing.T) {
	t.Parallel()
	textsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(textsDir, "broken.md"), []byte("---\n{not yaml\n---\nbody"), 0o644); err != nil {
		t.Fatalf("write broken file: %v", err)
	}
	uc := usecase.NewInteractor(service.NewCatalogService(
		catalogout.NewVaultTextStore(textsDir),
		catalogout.BuiltinTexts(),
	))
	texts, err := uc.ListTexts(context.Background())
	if err != nil {
		t.Fatalf("list with broken file: %v", err)
	}
	if len(texts) != 5 {
		t.Fatalf("expected builtins only, got %d texts", len(texts))
	}
}
