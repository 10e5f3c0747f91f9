package catalog

import (
	"fmt"
	"strings"
)

// Kind identifies which variant an Item is.
type Kind int

const (
	KindPlain Kind = iota + 1
	KindDigital
	KindPhysical
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "Book"
	case KindDigital:
		return "EBook"
	case KindPhysical:
		return "PrintBook"
	default:
		return "Unknown"
	}
}

// Key is the identity pair of an item. Two items with the same Key are
// the same work regardless of kind.
type Key struct {
	Title  string
	Author string
}

type digitalDetails struct {
	fileSizeKB int
	format     string
}

type physicalDetails struct {
	pageCount  int
	identifier string
}

// Item is one cataloged work. Items are immutable values; build them with
// NewPlain, NewDigital or NewPhysical. The zero Item is not valid.
type Item struct {
	kind     Kind
	title    string
	author   string
	digital  digitalDetails
	physical physicalDetails
}

// NewPlain creates an item that only carries a title and an author.
func NewPlain(title, author string) (Item, error) {
	f := plainFields{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
	}
	if err := validateFirst(f); err != nil {
		return Item{}, err
	}
	return Item{kind: KindPlain, title: f.Title, author: f.Author}, nil
}

// NewDigital creates an electronic item. The format is stored upper-cased.
func NewDigital(title, author string, fileSizeKB int, format string) (Item, error) {
	f := digitalFields{
		Title:      strings.TrimSpace(title),
		Author:     strings.TrimSpace(author),
		FileSizeKB: fileSizeKB,
		Format:     strings.ToUpper(strings.TrimSpace(format)),
	}
	if err := validateFirst(f); err != nil {
		return Item{}, err
	}
	return Item{
		kind:    KindDigital,
		title:   f.Title,
		author:  f.Author,
		digital: digitalDetails{fileSizeKB: f.FileSizeKB, format: f.Format},
	}, nil
}

// NewPhysical creates a printed item. The identifier is not checksummed;
// use IdentifierLooksValid for a pre-check.
func NewPhysical(title, author string, pageCount int, identifier string) (Item, error) {
	f := physicalFields{
		Title:      strings.TrimSpace(title),
		Author:     strings.TrimSpace(author),
		PageCount:  pageCount,
		Identifier: strings.TrimSpace(identifier),
	}
	if err := validateFirst(f); err != nil {
		return Item{}, err
	}
	return Item{
		kind:     KindPhysical,
		title:    f.Title,
		author:   f.Author,
		physical: physicalDetails{pageCount: f.PageCount, identifier: f.Identifier},
	}, nil
}

func (i Item) Kind() Kind { return i.kind }

func (i Item) Title() string { return i.title }

func (i Item) Author() string { return i.author }

// FileSizeKB is zero for non-digital items.
func (i Item) FileSizeKB() int { return i.digital.fileSizeKB }

func (i Item) Format() string { return i.digital.format }

// PageCount is zero for non-physical items.
func (i Item) PageCount() int { return i.physical.pageCount }

func (i Item) Identifier() string { return i.physical.identifier }

// Key returns the identity pair used for equality and duplicate detection.
func (i Item) Key() Key {
	return Key{Title: i.title, Author: i.author}
}

// Equal reports whether both items describe the same work.
func (i Item) Equal(other Item) bool {
	return i.Key() == other.Key()
}

func (i Item) valid() bool {
	return i.kind >= KindPlain && i.kind <= KindPhysical
}

// FileInfo describes the file of a digital item, or returns "" for other kinds.
func (i Item) FileInfo() string {
	if i.kind != KindDigital {
		return ""
	}
	return fmt.Sprintf("File: %s, %dKB", i.digital.format, i.digital.fileSizeKB)
}

// PhysicalInfo describes a printed item, or returns "" for other kinds.
func (i Item) PhysicalInfo() string {
	if i.kind != KindPhysical {
		return ""
	}
	return fmt.Sprintf("Pages: %d, ISBN: %s", i.physical.pageCount, i.physical.identifier)
}

func (i Item) String() string {
	switch i.kind {
	case KindDigital:
		return fmt.Sprintf("%s by %s, %s, %dKB", i.title, i.author, i.digital.format, i.digital.fileSizeKB)
	case KindPhysical:
		return fmt.Sprintf("%s by %s, %d pages, ISBN %s", i.title, i.author, i.physical.pageCount, i.physical.identifier)
	default:
		return fmt.Sprintf("%s by %s", i.title, i.author)
	}
}

// GoString renders the constructor call that rebuilds an equivalent item.
func (i Item) GoString() string {
	switch i.kind {
	case KindPlain:
		return fmt.Sprintf("catalog.NewPlain(%q, %q)", i.title, i.author)
	case KindDigital:
		return fmt.Sprintf("catalog.NewDigital(%q, %q, %d, %q)", i.title, i.author, i.digital.fileSizeKB, i.digital.format)
	case KindPhysical:
		return fmt.Sprintf("catalog.NewPhysical(%q, %q, %d, %q)", i.title, i.author, i.physical.pageCount, i.physical.identifier)
	default:
		return "catalog.Item{}"
	}
}
