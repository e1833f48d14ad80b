package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/headwear-patcher/internal/mod"
	"github.com/OCharnyshevich/headwear-patcher/internal/storage"
)

// PatchCmd returns the patch command
func PatchCmd() *cobra.Command {
	var (
		modDir string
		dbDir  string
		outDir string
		debug  bool
	)

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Patch the item database",
		Long: `Load the item database, apply the mod's overrides once and write
the patched templates back. Without --out the database is patched in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.OutOrStdout())

			var opts []mod.Option
			if cmd.Flags().Changed("debug") {
				opts = append(opts, mod.WithDebug(debug))
			}

			m, err := mod.New(modDir, log, opts...)
			if err != nil {
				return err
			}

			db, err := storage.New(dbDir, log).LoadDatabase()
			if err != nil {
				return err
			}

			res := m.OnLoad(db)

			if outDir == "" {
				outDir = dbDir
			}
			if err := storage.New(outDir, log).SaveItems(db); err != nil {
				return fmt.Errorf("save items: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, color.New(color.FgGreen).Sprintf("[%s] Patched %d items!", mod.Info.Name, res.Patched))
			if n := len(res.MissingProps); n > 0 {
				fmt.Fprintln(out, color.New(color.FgYellow).Sprintf("  %d matched items had no properties", n))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modDir, "mod-dir", ".", "mod folder holding the config file")
	cmd.Flags().StringVar(&dbDir, "database", "", "database directory containing templates/items.json")
	cmd.Flags().StringVar(&outDir, "out", "", "directory to write the patched database to (default: --database)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log every patched item (overrides the config file)")
	_ = cmd.MarkFlagRequired("database")
	return cmd
}
