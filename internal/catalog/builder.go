package catalog

// Builder constructs items and records each successful construction on its
// logger. Constructors used directly never log.
type Builder struct {
	logger Logger
}

// NewBuilder returns a Builder reporting to logger. A nil logger discards entries.
func NewBuilder(logger Logger) *Builder {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Builder{logger: logger}
}

func (b *Builder) Plain(title, author string) (Item, error) {
	return b.record(NewPlain(title, author))
}

func (b *Builder) Digital(title, author string, fileSizeKB int, format string) (Item, error) {
	return b.record(NewDigital(title, author, fileSizeKB, format))
}

func (b *Builder) Physical(title, author string, pageCount int, identifier string) (Item, error) {
	return b.record(NewPhysical(title, author, pageCount, identifier))
}

func (b *Builder) record(item Item, err error) (Item, error) {
	if err != nil {
		return Item{}, err
	}
	logInfo(b.logger, "created item", "kind", item.Kind().String(), "title", item.Title(), "author", item.Author())
	return item, nil
}
