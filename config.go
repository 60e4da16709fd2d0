package sparse

type config struct {
	pageSize uint32
	maxID    ID
	bounded  bool
	capacity int
	logger   *Logger
}

func defaultConfig() config {
	return config{
		pageSize: DefaultPageSize,
		logger:   defaultLogger,
	}
}

// PagedSetBuilder configures and creates a PagedSet.
type PagedSetBuilder[T any] struct {
	cfg config
}

func NewPagedSetBuilder[T any]() *PagedSetBuilder[T] {
	return &PagedSetBuilder[T]{cfg: defaultConfig()}
}

// WithPageSize sets the number of sparse slots per page.
func (b *PagedSetBuilder[T]) WithPageSize(size uint32) *PagedSetBuilder[T] {
	b.cfg.pageSize = size
	return b
}

// WithMaxID bounds the ids Add accepts; larger ids are rejected.
func (b *PagedSetBuilder[T]) WithMaxID(id ID) *PagedSetBuilder[T] {
	b.cfg.maxID = id
	b.cfg.bounded = true
	return b
}

// WithCapacity preallocates dense storage for n entries.
func (b *PagedSetBuilder[T]) WithCapacity(n int) *PagedSetBuilder[T] {
	b.cfg.capacity = max(n, 0)
	return b
}

// WithLogger sets the logger used for fault diagnostics.
func (b *PagedSetBuilder[T]) WithLogger(logger *Logger) *PagedSetBuilder[T] {
	if logger == nil {
		logger = defaultLogger
	}
	b.cfg.logger = logger
	return b
}

func (b *PagedSetBuilder[T]) Build() (*PagedSet[T], error) {
	if b.cfg.pageSize == 0 || b.cfg.pageSize > maxPageSize {
		return nil, InvalidPageSizeError{Size: b.cfg.pageSize}
	}
	return newPagedSet[T](b.cfg), nil
}
