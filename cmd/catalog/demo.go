package main

import (
	"fmt"
	"io"
	"time"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/seed"

	"github.com/spf13/cobra"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the catalog operations with sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(cmd.OutOrStdout())
		},
	}
}

type demoStep struct {
	title string
	run   func(io.Writer) error
}

func (a *app) runDemo(w io.Writer) error {
	steps := []demoStep{
		{"Basic Functionality", a.demoBasics},
		{"Error Handling", a.demoErrors},
		{"Search and Filtering", a.demoSearch},
		{"Item Kinds", a.demoKinds},
		{"Iteration", a.demoIteration},
		{"Shared Items", a.demoSharedItems},
		{"Bulk Load", a.demoBulk},
	}

	for _, step := range steps {
		fmt.Fprintf(w, "\n=== %s ===\n", step.title)
		if err := step.run(w); err != nil {
			return fmt.Errorf("%s: %w", step.title, err)
		}
	}
	fmt.Fprintln(w, "\nDemo completed.")
	return nil
}

func (a *app) newCatalog(name string) (*catalog.Catalog, error) {
	return catalog.CreateEmpty(name, catalog.WithLogger(a.logger))
}

func (a *app) demoBasics(w io.Writer) error {
	empty, err := a.newCatalog("Empty Library")
	if err != nil {
		return err
	}
	if err := empty.ListAll(w); err != nil {
		return err
	}

	c, err := a.newCatalog(a.cfg.CatalogName)
	if err != nil {
		return err
	}
	if err := seed.Load(c, catalog.NewBuilder(a.logger), seed.Classics[:3]); err != nil {
		return err
	}
	if err := c.ListAll(w); err != nil {
		return err
	}

	if _, err := c.Remove("1984", "George Orwell"); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nAfter removing 1984:")
	if err := c.ListAll(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", c)
	return nil
}

// demoErrors shows the errors the catalog reports; none of them stop the demo.
func (a *app) demoErrors(w io.Writer) error {
	c, err := a.newCatalog("Error Test Library")
	if err != nil {
		return err
	}
	item, err := catalog.NewPlain("Dune", "Frank Herbert")
	if err != nil {
		return err
	}
	if err := c.Add(item); err != nil {
		return err
	}

	report := func(label string, err error) {
		if err == nil {
			fmt.Fprintf(w, "%s: unexpectedly succeeded\n", label)
			return
		}
		fmt.Fprintf(w, "%s: %v\n", label, err)
	}

	report("Duplicate add", c.Add(item))
	_, err = catalog.NewPlain("", "Frank Herbert")
	report("Empty title", err)
	_, err = catalog.NewDigital("Dune", "Frank Herbert", 0, "PDF")
	report("Zero file size", err)
	_, err = catalog.NewPhysical("Dune", "Frank Herbert", -1, "978-0-441-17271-9")
	report("Negative page count", err)
	_, err = c.Remove("Missing Book", "Nobody")
	report("Remove missing", err)
	_, err = c.Search("   ")
	report("Blank search", err)
	report("Blank catalog name", c.SetName(" "))
	return nil
}

func (a *app) demoSearch(w io.Writer) error {
	c, err := a.newCatalog("Comprehensive Library")
	if err != nil {
		return err
	}
	if err := seed.Load(c, catalog.NewBuilder(a.logger), seed.Classics); err != nil {
		return err
	}

	results, err := c.Search("1984")
	if err != nil {
		return err
	}
	printItems(w, `Search results for "1984":`, results)

	results, err = c.Search("orwell")
	if err != nil {
		return err
	}
	printItems(w, `Search results for "orwell":`, results)

	byAuthor, err := c.FindByAuthor("Jane Austen")
	if err != nil {
		return err
	}
	printItems(w, "Items by Jane Austen:", byAuthor)
	fmt.Fprintf(w, "Total items: %d\n", c.Size())
	return nil
}

func (a *app) demoKinds(w io.Writer) error {
	items, err := seed.Build(catalog.NewBuilder(a.logger), []seed.Work{
		{Title: "The Hobbit", Author: "J.R.R. Tolkien"},
		{Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", FileSizeKB: 1200, Format: "MOBI"},
		{Title: "The Two Towers", Author: "J.R.R. Tolkien", PageCount: 415, ISBN: "978-0-547-92822-7"},
	})
	if err != nil {
		return err
	}
	for i, item := range items {
		fmt.Fprintf(w, "Item %d: %s\n", i+1, item)
		fmt.Fprintf(w, "  Kind: %s\n", item.Kind())
		fmt.Fprintf(w, "  Repr: %#v\n", item)
		if info := item.FileInfo(); info != "" {
			fmt.Fprintf(w, "  %s\n", info)
		}
		if info := item.PhysicalInfo(); info != "" {
			fmt.Fprintf(w, "  %s\n", info)
		}
	}
	return nil
}

func (a *app) demoIteration(w io.Writer) error {
	c, err := a.newCatalog("Iteration Test Library")
	if err != nil {
		return err
	}
	err = seed.Load(c, catalog.NewBuilder(a.logger), []seed.Work{
		{Title: "Dune", Author: "Frank Herbert", FileSizeKB: 800, Format: "EPUB"},
		{Title: "Foundation", Author: "Isaac Asimov", PageCount: 244, ISBN: "978-0-553-29335-0"},
		{Title: "Hyperion", Author: "Dan Simmons"},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Iterating through %d items:\n", c.Len())
	i := 0
	for item := range c.All() {
		i++
		fmt.Fprintf(w, "  %d. %s\n", i, item)
	}
	return nil
}

func (a *app) demoSharedItems(w io.Writer) error {
	mainLib, err := a.newCatalog("Main Library")
	if err != nil {
		return err
	}
	branch, err := a.newCatalog("Branch Library")
	if err != nil {
		return err
	}

	items, err := seed.Build(catalog.NewBuilder(a.logger), []seed.Work{
		{Title: "The Lord of the Rings", Author: "J.R.R. Tolkien"},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", FileSizeKB: 600, Format: "PDF"},
	})
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := mainLib.Add(item); err != nil {
			return err
		}
	}
	if err := branch.Add(items[0]); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n%s\n\n", mainLib, branch)
	if err := mainLib.ListAll(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return branch.ListAll(w)
}

func (a *app) demoBulk(w io.Writer) error {
	c, err := a.newCatalog("Large Library")
	if err != nil {
		return err
	}

	start := time.Now()
	if err := seed.Load(c, catalog.NewBuilder(a.logger), seed.Generate(100)); err != nil {
		return err
	}
	fmt.Fprintf(w, "Added %d items in %s\n", c.Size(), time.Since(start))

	start = time.Now()
	results, err := c.Search("Book 50")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Search completed in %s\n", time.Since(start))
	fmt.Fprintf(w, "Found %d results\n", len(results))
	return nil
}
