package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the store schema up to date",
		Long: `Apply the embedded SQL migrations to PostgreSQL, or create the tables of
the local SQLite file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := a.openStore(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s store\n", cfg.StoreMode())
			return nil
		},
	}
}
