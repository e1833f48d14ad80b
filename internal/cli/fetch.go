package cli

import (
	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/headwear-patcher/internal/fetch"
)

// FetchCmd returns the fetch command
func FetchCmd() *cobra.Command {
	var (
		source string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a game database snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.OutOrStdout())
			return fetch.Fetch(cmd.Context(), log, out, source)
		},
	}

	cmd.Flags().StringVar(&source, "source", fetch.DefaultSource, "go-getter source url of the database directory")
	cmd.Flags().StringVarP(&out, "out", "o", "./database", "output dir path")
	return cmd
}
