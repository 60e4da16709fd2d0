package sparse

import "fmt"

type InvalidPageSizeError struct {
	Size uint32
}

func (e InvalidPageSizeError) Error() string {
	return fmt.Sprintf("invalid page size %d: must be between 1 and %d", e.Size, maxPageSize)
}

// MissingIDError is the panic value raised by Get when the id is not in the set.
type MissingIDError struct {
	ID   ID
	Type string
}

func (e MissingIDError) Error() string {
	return fmt.Sprintf("couldn't find id %d in sparse set of type %s", e.ID, e.Type)
}

type LockedRegistryError struct{}

func (e LockedRegistryError) Error() string {
	return "registry is currently locked"
}

type RegistryFullError struct {
	Capacity int
}

func (e RegistryFullError) Error() string {
	return fmt.Sprintf("registry at maximum capacity (%d)", e.Capacity)
}

type SetExistsError struct {
	Name string
}

func (e SetExistsError) Error() string {
	return fmt.Sprintf("set already registered: %s", e.Name)
}

type SetNotFoundError struct {
	Name string
}

func (e SetNotFoundError) Error() string {
	return fmt.Sprintf("set not registered: %s", e.Name)
}

type NilSetError struct {
	Name string
}

func (e NilSetError) Error() string {
	return fmt.Sprintf("cannot register nil set: %s", e.Name)
}
