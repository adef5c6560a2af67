package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"leseheft/internal/modules/catalog/domain"
	catalogout "leseheft/internal/modules/catalog/port/out"
	"leseheft/internal/platform/markdown"
	"leseheft/internal/platform/slug"
)

type questionMeta struct {
	ID            string   `yaml:"id"`
	Prompt        string   `yaml:"prompt"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correct_answer"`
	Explanation   string   `yaml:"explanation"`
	Kind          string   `yaml:"kind"`
}

type textMeta struct {
	ID        string         `yaml:"id"`
	Title     string         `yaml:"title"`
	Type      string         `yaml:"type"`
	Level     string         `yaml:"level"`
	WordCount int            `yaml:"word_count"`
	CreatedAt string         `yaml:"created_at"`
	Questions []questionMeta `yaml:"questions"`
}

// VaultTextStore reads reading passages from markdown files with YAML
// frontmatter under the texts directory. The frontmatter carries the
// metadata and question set; the body is the passage itself.
type VaultTextStore struct {
	textsDir string
}

func NewVaultTextStore(textsDir string) catalogout.TextStore {
	return &VaultTextStore{textsDir: textsDir}
}

func (s *VaultTextStore) List(_ context.Context) ([]domain.Text, error) {
	entries, err := os.ReadDir(s.textsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read texts dir: %w", err)
	}
	var texts []domain.Text
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		text, err := s.load(filepath.Join(s.textsDir, entry.Name()))
		if err != nil {
			// A malformed file must not take the catalog down.
			continue
		}
		texts = append(texts, text)
	}
	sort.Slice(texts, func(i, j int) bool { return texts[i].ID < texts[j].ID })
	return texts, nil
}

func (s *VaultTextStore) load(path string) (domain.Text, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return domain.Text{}, fmt.Errorf("read text file: %w", err)
	}
	meta := textMeta{}
	body, err := markdown.SplitFrontmatter(string(payload), &meta)
	if err != nil {
		return domain.Text{}, err
	}
	text := metaToText(meta, body)
	if err := text.Validate(); err != nil {
		return domain.Text{}, err
	}
	return text, nil
}

func (s *VaultTextStore) Save(_ context.Context, text domain.Text) (string, error) {
	if err := text.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.textsDir, 0o755); err != nil {
		return "", fmt.Errorf("create texts dir: %w", err)
	}
	rendered, err := markdown.RenderFrontmatter(textToMeta(text), text.Content)
	if err != nil {
		return "", err
	}
	path := s.pathFor(text)
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write text file: %w", err)
	}
	return path, nil
}

func (s *VaultTextStore) Exists(_ context.Context, text domain.Text) (bool, error) {
	_, err := os.Stat(s.pathFor(text))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat text file: %w", err)
	}
	return true, nil
}

func (s *VaultTextStore) pathFor(text domain.Text) string {
	return filepath.Join(s.textsDir, slug.Make(text.ID)+".md")
}

func metaToText(meta textMeta, body string) domain.Text {
	createdAt, _ := time.Parse("2006-01-02", meta.CreatedAt)
	level := meta.Level
	if level == "" {
		level = domain.Level
	}
	questions := make([]domain.Question, len(meta.Questions))
	for i, q := range meta.Questions {
		kind := domain.QuestionKind(q.Kind)
		if q.Kind == "" {
			kind = domain.QuestionKindMultipleChoice
		}
		questions[i] = domain.Question{
			ID:            q.ID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Kind:          kind,
		}
	}
	return domain.Text{
		ID:        meta.ID,
		Title:     meta.Title,
		Type:      domain.TextType(meta.Type),
		Level:     level,
		Content:   body,
		WordCount: meta.WordCount,
		Questions: questions,
		CreatedAt: createdAt,
	}
}

func textToMeta(text domain.Text) textMeta {
	questions := make([]questionMeta, len(text.Questions))
	for i, q := range text.Questions {
		questions[i] = questionMeta{
			ID:            q.ID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Kind:          string(q.Kind),
		}
	}
	return textMeta{
		ID:        text.ID,
		Title:     text.Title,
		Type:      string(text.Type),
		Level:     text.Level,
		WordCount: text.WordCount,
		CreatedAt: text.CreatedAt.Format("2006-01-02"),
		Questions: questions,
	}
}
