package cmd

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mission-control/internal/config"
	"github.com/ziadkadry99/mission-control/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect or reset the preferences stored for a browser",
	Long: `Each browser is identified by the mc_client cookie. These commands read
and clear the flags stored for one such ID in the SQLite store.`,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show <client-id>",
	Short: "Print the stored preferences for a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefsBackend(args[0], func(ctx context.Context, b prefs.Backend, id string) error {
			entries, err := b.List(ctx, id)
			if err != nil {
				return fmt.Errorf("listing preferences: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No preferences stored for %s\n", id)
				return nil
			}
			keys := make([]string, 0, len(entries))
			for k := range entries {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "%-10s %s\n", k, entries[k])
			}
			return nil
		})
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset <client-id>",
	Short: "Forget a client's theme and sign-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefsBackend(args[0], func(ctx context.Context, b prefs.Backend, id string) error {
			if err := b.Clear(ctx, id); err != nil {
				return fmt.Errorf("clearing preferences: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared preferences for %s\n", id)
			return nil
		})
	},
}

// withPrefsBackend validates the client ID, opens the configured store
// and runs fn against it.
func withPrefsBackend(rawID string, fn func(context.Context, prefs.Backend, string) error) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid client id %q: %w", rawID, err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Storage.Backend == config.StorageMemory {
		return fmt.Errorf("storage.backend is memory: nothing outlives the server process")
	}

	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer closeBackend()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return fn(ctx, backend, id.String())
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd, prefsResetCmd)
	rootCmd.AddCommand(prefsCmd)
}
