package cli

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/polidog/web/internal/importer"
)

const dirFlag = "dir"

func (a *app) newImportCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		dirFlag: &cobraflags.StringFlag{
			Name:  dirFlag,
			Value: "./content/blog",
			Usage: "Directory scanned recursively for markdown files",
		},
	}

	cmd := &cobra.Command{
		Use:   "import <author-id>",
		Short: "Import markdown files as posts",
		Long: `Import every *.md file below --dir as a post written by <author-id>.

Files laid out as yyyy/mm/name.md get the slug yyyy-mm-name. YAML (---) and
TOML (+++) front matter are read for title, date, draft, categories and tags.
Posts whose slug already exists are skipped, so the command can be re-run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.importPosts(cmd, args[0], flags[dirFlag].GetString())
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func (a *app) importPosts(cmd *cobra.Command, authorID, dir string) error {
	ctx := cmd.Context()
	store, cfg, err := a.openStore(ctx, true)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	result, err := importer.New(store, cfg.Location(), out).ImportDir(ctx, authorID, dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nImported: %d, Skipped: %d, Failed: %d\n", result.Imported, result.Skipped, result.Failed)
	for _, fe := range result.Errors {
		fmt.Fprintf(out, "  %s: %s\n", fe.Path, fe.Reason)
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d files failed to import", result.Failed, result.Total)
	}
	return nil
}
