package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/headwear-patcher/internal/mod"
)

// RootCmd returns the headwear-patcher command tree.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "headwear-patcher",
		Short:   "Relax helmet, headset, mask and eyewear slot restrictions",
		Version: mod.Info.Version,
		Long: `headwear-patcher rewrites the slot restriction flags of gear templates
in a game item database according to the mod's config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(PatchCmd())
	rootCmd.AddCommand(FetchCmd())

	return rootCmd
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
