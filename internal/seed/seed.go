// Package seed provides sample works for demos and tests.
package seed

import (
	"fmt"

	"bookcatalog/internal/catalog"
)

// Work is a raw sample record. FileSizeKB marks a digital work and
// PageCount a physical one; neither set means a plain work.
type Work struct {
	Title      string
	Author     string
	FileSizeKB int
	Format     string
	PageCount  int
	ISBN       string
}

// Classics is the default sample shelf.
var Classics = []Work{
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
	{Title: "1984", Author: "George Orwell", FileSizeKB: 300, Format: "EPUB"},
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", PageCount: 324, ISBN: "978-0-06-112008-4"},
	{Title: "Pride and Prejudice", Author: "Jane Austen"},
	{Title: "Brave New World", Author: "Aldous Huxley", FileSizeKB: 250, Format: "PDF"},
	{Title: "The Catcher in the Rye", Author: "J.D. Salinger", PageCount: 234, ISBN: "978-0-316-76948-0"},
	{Title: "Animal Farm", Author: "George Orwell", PageCount: 112, ISBN: "978-0-452-28424-1"},
}

// Build constructs one item per work, in order.
func Build(b *catalog.Builder, works []Work) ([]catalog.Item, error) {
	items := make([]catalog.Item, 0, len(works))
	for _, w := range works {
		var (
			item catalog.Item
			err  error
		)
		switch {
		case w.FileSizeKB != 0 || w.Format != "":
			item, err = b.Digital(w.Title, w.Author, w.FileSizeKB, w.Format)
		case w.PageCount != 0 || w.ISBN != "":
			item, err = b.Physical(w.Title, w.Author, w.PageCount, w.ISBN)
		default:
			item, err = b.Plain(w.Title, w.Author)
		}
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", w.Title, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Load builds works and adds them to c.
func Load(c *catalog.Catalog, b *catalog.Builder, works []Work) error {
	items, err := Build(b, works)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := c.Add(item); err != nil {
			return fmt.Errorf("seed %q: %w", item.Title(), err)
		}
	}
	return nil
}

// Generate returns n synthetic works cycling through the three kinds, with
// ten distinct authors.
func Generate(n int) []Work {
	works := make([]Work, 0, n)
	for i := 0; i < n; i++ {
		author := fmt.Sprintf("Author %d", i%10)
		switch i % 3 {
		case 0:
			works = append(works, Work{Title: fmt.Sprintf("Book %d", i), Author: author})
		case 1:
			works = append(works, Work{Title: fmt.Sprintf("EBook %d", i), Author: author, FileSizeKB: 100 + i, Format: "PDF"})
		default:
			works = append(works, Work{Title: fmt.Sprintf("PrintBook %d", i), Author: author, PageCount: 200 + i, ISBN: fmt.Sprintf("978-%010d", i)})
		}
	}
	return works
}
