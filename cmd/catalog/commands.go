package main

import (
	"fmt"
	"io"
	"strings"

	"bookcatalog/internal/catalog"

	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every item in the sample catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.seededCatalog()
			if err != nil {
				return err
			}
			return c.ListAll(cmd.OutOrStdout())
		},
	}
}

func (a *app) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find items whose title or author contains the query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.seededCatalog()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			items, err := c.Search(query)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			printItems(cmd.OutOrStdout(), fmt.Sprintf("Search results for %q:", query), items)
			return nil
		},
	}
}

func (a *app) newByAuthorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-author <author>",
		Short: "List items by an exact author name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.seededCatalog()
			if err != nil {
				return err
			}
			author := strings.Join(args, " ")
			items, err := c.FindByAuthor(author)
			if err != nil {
				return fmt.Errorf("find by author: %w", err)
			}
			printItems(cmd.OutOrStdout(), fmt.Sprintf("Items by %s:", author), items)
			return nil
		},
	}
}

func (a *app) newCheckISBNCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-isbn <identifier>...",
		Short: "Report whether identifiers look like ISBN-10 or ISBN-13",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, id := range args {
				verdict := "invalid"
				if catalog.IdentifierLooksValid(id) {
					verdict = "valid"
				}
				fmt.Fprintf(out, "%s: %s\n", id, verdict)
			}
			return nil
		},
	}
}

func printItems(w io.Writer, header string, items []catalog.Item) {
	fmt.Fprintln(w, header)
	if len(items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}
