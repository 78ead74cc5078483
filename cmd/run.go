package cmd

import (
	"fmt"
	"os"

	"github.com/quizforge/quizforge/internal/app"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the generator, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	generator, err := buildGenerator(cmd, st)
	if err != nil {
		return err
	}

	return app.Run(app.Deps{
		Generator:  generator,
		ResultRepo: st.ResultRepo(),
	})
}

// buildGenerator assembles the question generator from flags: the local
// pipeline by default, wrapped by the remote backend when --remote is
// set and a provider is configured. A store may be nil for commands
// that run without one.
func buildGenerator(cmd *cobra.Command, st *store.Store) (quizgen.Generator, error) {
	strategy, _ := cmd.Flags().GetString("strategy")
	seed, _ := cmd.Flags().GetUint64("seed")
	remote, _ := cmd.Flags().GetBool("remote")

	cfg := quizgen.Config{
		Strategy: quizgen.BalanceStrategy(strategy),
		Seed:     seed,
	}
	if !cfg.Strategy.Valid() {
		return nil, fmt.Errorf("unknown balance strategy %q", strategy)
	}
	local := quizgen.NewLocal(cfg)

	if !remote {
		return local, nil
	}

	var eventRepo store.EventRepo
	if st != nil {
		eventRepo = st.EventRepo()
	}
	provider, err := llm.NewProviderFromEnv(cmd.Context(), eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to local generation.")
		return local, nil
	}
	return quizgen.NewRemote(provider, local, 0), nil
}
