// Command kudosctl reads the kudos wall through the HTTP API
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"kudoswall/internal/adapters/kudosapi"
	"kudoswall/internal/core/pagination"
	"kudoswall/internal/core/version"
	"kudoswall/internal/platform/config"
	"kudoswall/internal/services/api/kudos/domain"

	"github.com/spf13/cobra"
)

// backend is what the commands need from the API client
type backend interface {
	domain.Repository
	Get(ctx context.Context, id string) (domain.Kudos, error)
}

// NewRootCmd wires every subcommand over b
func NewRootCmd(b backend) *cobra.Command {
	if b == nil {
		panic("NewRootCmd: backend dependency cannot be nil")
	}
	root := &cobra.Command{
		Use:           "kudosctl",
		Short:         "Browse the kudos wall",
		Version:       version.Info().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		NewListCmd(b),
		NewUserCmd(b),
		NewGetCmd(b),
		NewBrowseCmd(b),
	)
	return root
}

func newClient() (*kudosapi.Client, error) {
	cfg := config.New().Prefix("KUDOSCTL_")
	return kudosapi.New(kudosapi.Options{
		BaseURL:   cfg.MayString("BASE_URL", "http://localhost:4000"),
		Timeout:   cfg.MayDuration("TIMEOUT", 10*time.Second),
		Tokens:    kudosapi.StaticToken(cfg.MayString("TOKEN", "")),
		UserAgent: "kudosctl/" + version.Info().Version,
	})
}

func main() {
	version.Service = "kudosctl"

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "kudosctl:", err)
		os.Exit(2)
	}
	if err := NewRootCmd(c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kudosctl:", err)
		os.Exit(1)
	}
}

// pageFlags registers --page and --limit with the wall defaults
func pageFlags(cmd *cobra.Command, page, limit *int) {
	cmd.Flags().IntVar(page, "page", domain.DefaultPage, "page number, starting at 1")
	cmd.Flags().IntVar(limit, "limit", domain.DefaultLimit, "kudos per page")
}

func footer(m pagination.Meta) string {
	if m.TotalPages == 0 {
		return "no kudos"
	}
	return fmt.Sprintf("page %d of %d, %d kudos", m.CurrentPage, m.TotalPages, m.TotalItems)
}
