package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/feed"
	"kudoswall/internal/services/api/kudos/domain"
	"kudoswall/internal/services/api/kudos/service"

	"github.com/spf13/cobra"
)

const browseHelp = `commands:
  n | next              next page
  p | prev              previous page
  page <n>              jump to page n
  limit <n>             kudos per page, back to page 1
  team <name>           filter by team, empty clears
  category <name>       filter by category, empty clears
  search <text>         text search, empty clears
  recipient <text>      recipient id or name, empty clears
  from <YYYY-MM-DD>     first day, empty clears
  to <YYYY-MM-DD>       last day, empty clears
  clear                 drop every filter
  r | retry             fetch the current page again
  q | quit              leave`

// NewBrowseCmd runs an interactive pager over the wall, one command per input line
func NewBrowseCmd(repo domain.Repository) *cobra.Command {
	var (
		userID, kind string
		limit        int
		timeout      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through kudos interactively",
		Long:  "Page through kudos interactively.\n\n" + browseHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := feed.Kudos(service.NewGetKudos(repo))
			if userID != "" {
				t, err := domain.ParseUserKudosType(kind)
				if err != nil {
					return err
				}
				src = feed.UserKudos(service.NewGetUserKudos(repo), userID, t)
			}
			f := feed.New(src, feed.WithPage(domain.DefaultPage, limit), feed.WithTimeout(timeout))
			defer func() {
				f.Close()
				f.Wait()
			}()
			return browse(cmd.InOrStdin(), cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "browse one user's kudos instead of the wall")
	cmd.Flags().StringVar(&kind, "type", string(domain.Received), "received or sent, with --user")
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultLimit, "kudos per page")
	cmd.Flags().DurationVar(&timeout, "timeout", feed.DefaultTimeout, "per page fetch timeout")
	return cmd
}

func browse(in io.Reader, out io.Writer, f *feed.Feed) error {
	f.Start()
	f.Wait()
	show(out, f.Snapshot())

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		verb, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		arg = strings.TrimSpace(arg)

		s := f.Snapshot()
		switch verb {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprintln(out, browseHelp)
			continue
		case "n", "next":
			if s.Pagination != nil && !s.Pagination.HasNext() {
				fmt.Fprintln(out, "already on the last page")
				continue
			}
			f.UpdatePage(s.Page + 1)
		case "p", "prev":
			if s.Page <= 1 {
				fmt.Fprintln(out, "already on the first page")
				continue
			}
			f.UpdatePage(s.Page - 1)
		case "page", "limit":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(out, "%s needs a number\n", verb)
				continue
			}
			if verb == "page" {
				f.UpdatePage(n)
			} else {
				f.UpdateLimit(n)
			}
		case "r", "retry":
			f.Refetch()
		case "clear":
			empty := ""
			none, noCat := domain.Team(""), domain.Category("")
			f.UpdateFilter(domain.FilterPatch{
				Recipient: &empty, Team: &none, Category: &noCat, Search: &empty, From: &empty, To: &empty,
			})
		default:
			patch, err := patchFor(verb, arg)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			f.UpdateFilter(patch)
		}
		f.Wait()
		show(out, f.Snapshot())
	}
}

// patchFor turns a filter command into a single field patch
func patchFor(verb, arg string) (domain.FilterPatch, error) {
	var p domain.FilterPatch
	switch verb {
	case "team":
		t := domain.Team("")
		if arg != "" {
			parsed, err := domain.ParseTeam(arg)
			if err != nil {
				return p, err
			}
			t = parsed
		}
		p.Team = &t
	case "category":
		c := domain.Category("")
		if arg != "" {
			parsed, err := domain.ParseCategory(arg)
			if err != nil {
				return p, err
			}
			c = parsed
		}
		p.Category = &c
	case "search":
		p.Search = &arg
	case "recipient":
		p.Recipient = &arg
	case "from":
		p.From = &arg
	case "to":
		p.To = &arg
	default:
		return p, fmt.Errorf("unknown command %q, try help", verb)
	}
	return p, nil
}

func show(out io.Writer, s feed.Snapshot) {
	if s.State == feed.StateError {
		fmt.Fprintf(out, "error: %v\n(type r to retry)\n", s.Err)
		return
	}
	meta := pagination.Meta{}
	if s.Pagination != nil {
		meta = *s.Pagination
	}
	_ = render(out, pagination.Result[domain.Kudos]{Data: s.Data, Pagination: meta}, false)
}
