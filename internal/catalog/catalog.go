package catalog

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Catalog is an ordered collection of items with no two items sharing a Key.
// Insertion order is the iteration and display order.
//
// A Catalog is not safe for concurrent use. Callers that share one across
// goroutines must serialize all access, including iteration.
type Catalog struct {
	name   string
	items  []Item
	index  map[Key]int
	logger Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the informational sink. The default discards entries.
func WithLogger(logger Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty catalog. The name is trimmed and must not be blank.
func New(name string, opts ...Option) (*Catalog, error) {
	if err := requireText("catalog name", name); err != nil {
		return nil, err
	}
	c := &Catalog{
		name:   strings.TrimSpace(name),
		index:  make(map[Key]int),
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	logInfo(c.logger, "created catalog", "catalog", c.name)
	return c, nil
}

// CreateEmpty is New under a name that reads better at some call sites.
func CreateEmpty(name string, opts ...Option) (*Catalog, error) {
	return New(name, opts...)
}

func (c *Catalog) Name() string {
	return c.name
}

// SetName renames the catalog. The current name is kept on error.
func (c *Catalog) SetName(name string) error {
	if err := requireText("catalog name", name); err != nil {
		return err
	}
	c.name = strings.TrimSpace(name)
	return nil
}

// Add appends item. It fails with a ValidationError for an item that was
// not built by a constructor, and with a DuplicateError when an item with
// the same title and author is already present.
func (c *Catalog) Add(item Item) error {
	if !item.valid() {
		return &ValidationError{
			Field:   "item",
			Message: "item must be built with NewPlain, NewDigital or NewPhysical",
		}
	}
	key := item.Key()
	if _, exists := c.index[key]; exists {
		return &DuplicateError{Title: key.Title, Author: key.Author}
	}

	c.index[key] = len(c.items)
	c.items = append(c.items, item)
	logInfo(c.logger, "added item", "catalog", c.name, "title", item.Title(), "author", item.Author())
	return nil
}

// Remove deletes the item identified by title and author. It returns true
// on success and a NotFoundError when no such item exists; removal is never
// silent.
func (c *Catalog) Remove(title, author string) (bool, error) {
	if err := requireText("title", title); err != nil {
		return false, err
	}
	if err := requireText("author", author); err != nil {
		return false, err
	}

	key := Key{Title: strings.TrimSpace(title), Author: strings.TrimSpace(author)}
	pos, ok := c.index[key]
	if !ok {
		return false, &NotFoundError{Title: key.Title, Author: key.Author}
	}

	// Build a fresh slice so iterators started earlier keep their snapshot.
	c.items = slices.Concat(c.items[:pos], c.items[pos+1:])
	delete(c.index, key)
	for i := pos; i < len(c.items); i++ {
		c.index[c.items[i].Key()] = i
	}

	logInfo(c.logger, "removed item", "catalog", c.name, "title", key.Title, "author", key.Author)
	return true, nil
}

// Search returns the items whose title or author contains query, ignoring
// case, in catalog order.
func (c *Catalog) Search(query string) ([]Item, error) {
	if err := requireText("search query", query); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var matches []Item
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.title), q) || strings.Contains(strings.ToLower(item.author), q) {
			matches = append(matches, item)
		}
	}

	logInfo(c.logger, "searched catalog", "catalog", c.name, "query", q, "results", len(matches))
	return matches, nil
}

// FindByAuthor returns the items whose author equals the trimmed input
// exactly. Matching is case-sensitive.
func (c *Catalog) FindByAuthor(author string) ([]Item, error) {
	if err := requireText("author", author); err != nil {
		return nil, err
	}

	author = strings.TrimSpace(author)
	var matches []Item
	for _, item := range c.items {
		if item.author == author {
			matches = append(matches, item)
		}
	}

	logInfo(c.logger, "filtered catalog by author", "catalog", c.name, "author", author, "results", len(matches))
	return matches, nil
}

// Contains reports whether an item with the given identity pair is cataloged.
func (c *Catalog) Contains(title, author string) bool {
	_, ok := c.index[Key{Title: strings.TrimSpace(title), Author: strings.TrimSpace(author)}]
	return ok
}

func (c *Catalog) Size() int {
	return len(c.items)
}

// Len is an alias of Size.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All yields the items in insertion order. Each call starts a new pass
// over the contents present when the pass begins.
func (c *Catalog) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		items := c.items
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Items returns a copy of the items in insertion order.
func (c *Catalog) Items() []Item {
	return slices.Clone(c.items)
}

// ListAll writes one numbered line per item to w, or a notice when the
// catalog is empty.
func (c *Catalog) ListAll(w io.Writer) error {
	if len(c.items) == 0 {
		_, err := fmt.Fprintf(w, "No items in %s\n", c.name)
		return err
	}

	if _, err := fmt.Fprintf(w, "Items in %s:\n%s\n", c.name, strings.Repeat("-", 50)); err != nil {
		return err
	}
	for i, item := range c.items {
		if _, err := fmt.Fprintf(w, "%2d. %s\n", i+1, item); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) String() string {
	return fmt.Sprintf("Catalog: %s (%d items)", c.name, len(c.items))
}

func (c *Catalog) GoString() string {
	return fmt.Sprintf("catalog.Catalog{Name: %q, Items: %d}", c.name, len(c.items))
}
