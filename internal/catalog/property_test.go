package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"bookcatalog/internal/catalog"

	"pgregory.net/rapid"
)

var (
	titleGen  = rapid.SampledFrom([]string{"Dune", "Emma", "Foundation", "Hyperion", "1984", "Animal Farm"})
	authorGen = rapid.SampledFrom([]string{"Frank Herbert", "Jane Austen", "Isaac Asimov", "George Orwell"})
)

// itemGen draws an item of any kind with a title and author from a small
// pool so collisions are common.
func itemGen() *rapid.Generator[catalog.Item] {
	return rapid.Custom(func(t *rapid.T) catalog.Item {
		title := titleGen.Draw(t, "title")
		author := authorGen.Draw(t, "author")

		var (
			item catalog.Item
			err  error
		)
		switch rapid.IntRange(0, 2).Draw(t, "kind") {
		case 0:
			item, err = catalog.NewPlain(title, author)
		case 1:
			item, err = catalog.NewDigital(title, author, rapid.IntRange(1, 1<<20).Draw(t, "size"), "pdf")
		default:
			item, err = catalog.NewPhysical(title, author, rapid.IntRange(1, 5000).Draw(t, "pages"), "978-0-00-000000-0")
		}
		if err != nil {
			t.Fatalf("building item: %v", err)
		}
		return item
	})
}

func TestProperty_NoDuplicateKeys(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, err := catalog.New("Property Library")
		if err != nil {
			t.Fatal(err)
		}

		seen := make(map[catalog.Key]bool)
		for _, item := range rapid.SliceOf(itemGen()).Draw(t, "items") {
			before := c.Size()
			err := c.Add(item)
			if seen[item.Key()] {
				if !errors.Is(err, catalog.ErrDuplicate) {
					t.Fatalf("adding %v again: got %v, want duplicate error", item, err)
				}
				if c.Size() != before {
					t.Fatalf("size changed on rejected add: %d -> %d", before, c.Size())
				}
				continue
			}
			if err != nil {
				t.Fatalf("adding %v: %v", item, err)
			}
			seen[item.Key()] = true
		}

		keys := make(map[catalog.Key]bool)
		for item := range c.All() {
			if keys[item.Key()] {
				t.Fatalf("key %v appears twice", item.Key())
			}
			keys[item.Key()] = true
		}
	})
}

func TestProperty_RemoveRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, _ := catalog.New("Property Library")
		for _, item := range rapid.SliceOfN(itemGen(), 1, 20).Draw(t, "items") {
			_ = c.Add(item)
		}

		items := c.Items()
		victim := items[rapid.IntRange(0, len(items)-1).Draw(t, "victim")]
		before := c.Size()

		ok, err := c.Remove(victim.Title(), victim.Author())
		if !ok || err != nil {
			t.Fatalf("removing %v: ok=%v err=%v", victim, ok, err)
		}
		if c.Size() != before-1 {
			t.Fatalf("size after remove = %d, want %d", c.Size(), before-1)
		}

		var want []catalog.Item
		for _, item := range items {
			if !item.Equal(victim) {
				want = append(want, item)
			}
		}
		got := c.Items()
		if len(got) != len(want) {
			t.Fatalf("got %d items, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order changed at %d: got %v, want %v", i, got[i], want[i])
			}
		}

		if _, err := c.Remove(victim.Title(), victim.Author()); !errors.Is(err, catalog.ErrNotFound) {
			t.Fatalf("second remove: got %v, want not found", err)
		}
	})
}

func TestProperty_SearchMatchesSubstring(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, _ := catalog.New("Property Library")
		for _, item := range rapid.SliceOf(itemGen()).Draw(t, "items") {
			_ = c.Add(item)
		}
		query := rapid.SampledFrom([]string{"e", "AN", "orwell", "Dune", " ism "}).Draw(t, "query")

		got, err := c.Search(query)
		if err != nil {
			t.Fatal(err)
		}

		q := strings.ToLower(strings.TrimSpace(query))
		var want []catalog.Item
		for item := range c.All() {
			if strings.Contains(strings.ToLower(item.Title()), q) || strings.Contains(strings.ToLower(item.Author()), q) {
				want = append(want, item)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("search %q: got %d items, want %d", query, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("search %q: result %d is %v, want %v", query, i, got[i], want[i])
			}
		}
	})
}
