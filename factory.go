package sparse

type factory struct{}

var Factory factory

func (f factory) NewRegistry(capacity int) Registry {
	return newRegistry(capacity)
}

// FactoryNewPagedSet returns an empty set with the default page size and no id bound.
func FactoryNewPagedSet[T any]() *PagedSet[T] {
	return newPagedSet[T](defaultConfig())
}

func FactoryNewCursor[T any](set *PagedSet[T]) *Cursor[T] {
	return newCursor(set)
}
