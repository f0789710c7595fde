package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/services/api/kudos/domain"
	"kudoswall/internal/services/api/kudos/service"

	"github.com/spf13/cobra"
)

// NewListCmd lists the wall with optional filters
func NewListCmd(repo domain.Repository) *cobra.Command {
	var (
		f           domain.Filter
		team, cat   string
		page, limit int
		asJSON      bool
	)
	uc := service.NewGetKudos(repo)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List kudos, newest first",
		Example: `  kudosctl list --team engineering --limit 5
  kudosctl list --search "release" --from 2025-08-01 --to 2025-08-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if team != "" {
				t, err := domain.ParseTeam(team)
				if err != nil {
					return err
				}
				f.Team = t
			}
			if cat != "" {
				c, err := domain.ParseCategory(cat)
				if err != nil {
					return err
				}
				f.Category = c
			}
			if err := f.Validate(); err != nil {
				return err
			}
			res, err := uc.Execute(cmd.Context(), f, page, limit)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), res, asJSON)
		},
	}
	cmd.Flags().StringVar(&f.Recipient, "recipient", "", "recipient id or name fragment")
	cmd.Flags().StringVar(&team, "team", "", "team name")
	cmd.Flags().StringVar(&cat, "category", "", "kudos category")
	cmd.Flags().StringVar(&f.Search, "search", "", "case insensitive text search")
	cmd.Flags().StringVar(&f.From, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.To, "to", "", "last day, YYYY-MM-DD")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw page as JSON")
	pageFlags(cmd, &page, &limit)
	return cmd
}

// render prints a page as a table or as JSON
func render(w io.Writer, res pagination.Result[domain.Kudos], asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTO\tFROM\tTEAM\tCATEGORY\tMESSAGE")
	for _, k := range res.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			k.CreatedAt.Format("2006-01-02"), k.RecipientName, k.CreatedByName, k.TeamName, k.Category, k.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, footer(res.Pagination))
	return err
}
