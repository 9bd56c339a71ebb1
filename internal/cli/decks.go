package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newDecksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List your decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			decks, err := opts.client(cmd).ListDecks(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(decks) == 0 {
				fmt.Fprintln(out, "No decks yet.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCARDS\tUPDATED")
			for _, d := range decks {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", d.ID, d.Name, len(d.Cards), d.UpdatedAt.Local().Format(time.DateTime))
			}
			return w.Flush()
		},
	}
}
