package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/headwear-patcher/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var modDir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default config file",
		Long:  `Create config.jsonc in the mod folder unless a config file already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.OutOrStdout())

			cfg, err := config.Init(modDir, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s config at %s\n", color.New(color.FgGreen).Sprint("✓"), config.Path(modDir))
			fmt.Fprintf(out, "  face shields: %d\n", len(cfg.FaceShieldItemIDs))
			fmt.Fprintf(out, "  base class rules: %d\n", len(cfg.ItemSettings))
			return nil
		},
	}

	cmd.Flags().StringVar(&modDir, "mod-dir", ".", "mod folder holding the config file")
	return cmd
}
