package main

import (
	"context"
	"encoding/json"
	"fmt"

	"kudoswall/internal/services/api/kudos/domain"
	"kudoswall/internal/services/api/kudos/service"

	"github.com/spf13/cobra"
)

// NewUserCmd lists the kudos a user received or sent
func NewUserCmd(repo domain.Repository) *cobra.Command {
	var (
		kind        string
		page, limit int
		asJSON      bool
	)
	uc := service.NewGetUserKudos(repo)

	cmd := &cobra.Command{
		Use:   "user <user-id>",
		Short: "List kudos received or sent by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseUserKudosType(kind)
			if err != nil {
				return err
			}
			res, err := uc.Execute(cmd.Context(), args[0], t, page, limit)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), res, asJSON)
		},
	}
	cmd.Flags().StringVar(&kind, "type", string(domain.Received), "received or sent")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw page as JSON")
	pageFlags(cmd, &page, &limit)
	return cmd
}

type kudosGetter interface {
	Get(ctx context.Context, id string) (domain.Kudos, error)
}

// NewGetCmd prints a single kudos as JSON
func NewGetCmd(g kudosGetter) *cobra.Command {
	return &cobra.Command{
		Use:   "get <kudos-id>",
		Short: "Show one kudos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := g.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(k, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}
