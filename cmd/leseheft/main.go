package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"leseheft/internal/bootstrap"
	"leseheft/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".leseheft"
	}
	return filepath.Join(home, ".leseheft")
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "leseheft",
		Short:         "German A2 reading comprehension trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newTextCmd(&dataDir))
	root.AddCommand(newSeedCmd(&dataDir))
	root.AddCommand(newSessionCmd(&dataDir))
	root.AddCommand(newProgressCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newResetCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive trainer",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newTextCmd(dataDir *string) *cobra.Command {
	text := &cobra.Command{Use: "text", Short: "Text catalog commands"}

	text.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available texts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			texts, err := app.CatalogCLI.ListTexts(context.Background())
			if err != nil {
				return err
			}
			for _, t := range texts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d words\t%d questions\n",
					t.ID, t.Type, t.Title, t.WordCount, t.QuestionCount)
			}
			return nil
		},
	})

	text.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a text with its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			detail, err := app.CatalogCLI.GetText(context.Background(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (%s, %s, %d words)\n\n", detail.Title, detail.Type, detail.Level, detail.WordCount)
			_, _ = fmt.Fprintln(out, detail.Content)
			_, _ = fmt.Fprintln(out)
			for i, q := range detail.Questions {
				_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, q.Prompt)
				for j, option := range q.Options {
					_, _ = fmt.Fprintf(out, "   %d) %s\n", j+1, option)
				}
			}
			return nil
		},
	})

	return text
}

func newSeedCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the builtin texts into the texts directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.Seed(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d texts (%d already present)\n", len(out.Written), len(out.Skipped))
			return nil
		},
	}
}

func newSessionCmd(dataDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Running attempt commands"}

	session.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the resumable attempt, if any",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			current, err := app.ProgressCLI.CurrentSession(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tquestion %d\t%d answered\tstarted %s\n",
				current.TextID, current.CurrentQuestionIndex+1, len(current.Answers),
				current.StartedAt.Format("2006-01-02 15:04"))
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "abandon",
		Short: "Discard the resumable attempt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.ClearCurrent(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "attempt discarded")
			return nil
		},
	})

	return session
}

func newProgressCmd(dataDir *string) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Progress query commands"}

	progress.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			stats, err := app.ProgressCLI.Stats(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "sessions:        %d\n", stats.TotalSessions)
			_, _ = fmt.Fprintf(out, "average score:   %d%%\n", stats.AverageScore)
			_, _ = fmt.Fprintf(out, "correct answers: %d / %d\n", stats.TotalCorrectAnswers, stats.TotalQuestions)
			_, _ = fmt.Fprintf(out, "time spent:      %ds\n", stats.TotalTimeSpent)
			_, _ = fmt.Fprintf(out, "texts completed: %d\n", len(stats.TextsCompleted))
			_, _ = fmt.Fprintf(out, "day streak:      %d\n", stats.StreakDays)
			return nil
		},
	})

	var limit int
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			sessions, err := app.ProgressCLI.RecentSessions(context.Background(), limit)
			if err != nil {
				return err
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%3d%%\t%s\t%s\n",
					s.CompletedAt.Format("2006-01-02 15:04"), s.Score, s.TextID, s.TextTitle)
			}
			return nil
		},
	}
	recentCmd.Flags().IntVar(&limit, "limit", 0, "number of sessions (default from settings)")
	progress.AddCommand(recentCmd)

	var textID string
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			ctx := context.Background()
			sessions, err := app.ProgressCLI.Sessions(ctx)
			if textID != "" {
				sessions, err = app.ProgressCLI.SessionsForText(ctx, textID)
			}
			if err != nil {
				return err
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%3d%%\t%d/%d\n",
					s.ID, s.CompletedAt.Format("2006-01-02 15:04"), s.TextID, s.Score, s.CorrectAnswers, s.TotalQuestions)
			}
			return nil
		},
	}
	sessionsCmd.Flags().StringVar(&textID, "text", "", "only sessions for this text id")
	progress.AddCommand(sessionsCmd)

	progress.AddCommand(&cobra.Command{
		Use:   "best <text-id>",
		Short: "Show the best score for a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			best, err := app.ProgressCLI.BestScore(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d%%\n", best)
			return nil
		},
	})

	return progress
}

func newExportCmd(dataDir *string) *cobra.Command {
	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Export all progress data as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			payload, err := app.ProgressCLI.ExportAll(context.Background())
			if err != nil {
				return err
			}
			if outPath == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), payload)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(payload), 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", outPath)
			return nil
		},
	}
	export.Flags().StringVar(&outPath, "out", "", "write to file instead of stdout")
	return export
}

func newResetCmd(dataDir *string) *cobra.Command {
	var yes bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete all progress data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete data without --yes")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.ClearAll(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all progress data deleted")
			return nil
		},
	}
	reset.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return reset
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the session history index from the stored records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			count, err := app.ProgressCLI.Reindex(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d sessions\n", count)
			return nil
		},
	}
}
