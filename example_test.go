package sparse_test

import (
	"fmt"

	"github.com/TheBitDrifter/sparse"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Example shows basic paged set usage
func Example_basic() {
	positions, err := sparse.NewPagedSetBuilder[Position]().WithPageSize(4).Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	positions.Add(0, Position{X: 1})
	positions.Add(5, Position{X: 2})
	positions.Add(9, Position{X: 3})
	fmt.Println("Entries:", positions.Len(), "Pages:", positions.PageCount())

	positions.Remove(5)
	fmt.Println("Contains 5:", positions.Contains(5))
	fmt.Println("Position of 9:", positions.Get(9).X)

	// Output:
	// Entries: 3 Pages: 3
	// Contains 5: false
	// Position of 9: 3
}

// Example_cursor shows iteration with removal of the current entry
func Example_cursor() {
	positions := sparse.FactoryNewPagedSet[Position]()
	velocities := sparse.FactoryNewPagedSet[Velocity]()
	for id := sparse.ID(1); id <= 3; id++ {
		positions.Add(id, Position{})
		velocities.Add(id, Velocity{X: float64(id), Y: 1})
	}

	cursor := sparse.FactoryNewCursor(positions)
	for cursor.Next() {
		vel, ok := velocities.Lookup(cursor.ID())
		if !ok {
			continue
		}
		pos := cursor.Value()
		pos.X += vel.X
		pos.Y += vel.Y
		if pos.X > 2 {
			positions.Remove(cursor.ID())
		}
	}

	for id, pos := range positions.All() {
		fmt.Printf("%d: (%.0f, %.0f)\n", id, pos.X, pos.Y)
	}

	// Output:
	// 1: (1, 1)
	// 2: (2, 1)
}

// Example_registry shows removing an entity from every component set
func Example_registry() {
	registry := sparse.Factory.NewRegistry(8)
	positions := sparse.FactoryNewPagedSet[Position]()
	names := sparse.FactoryNewPagedSet[string]()
	registry.Register("position", positions)
	registry.Register("name", names)

	positions.Add(7, Position{X: 1})
	names.Add(7, "player")
	fmt.Println("Has both:", registry.HasAll(7, "position", "name"))

	removed, _ := registry.RemoveAll(7)
	fmt.Println("Removed from:", removed)
	fmt.Println("Has both:", registry.HasAll(7, "position", "name"))

	// Output:
	// Has both: true
	// Removed from: 2
	// Has both: false
}
