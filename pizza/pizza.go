// Package pizza models the pizzas on the menu.
package pizza

import "fmt"

// Size is the size of a pizza.
type Size string

// Accepted sizes.
const (
	SizeL  Size = "L"
	SizeXL Size = "XL"

	DefaultSize = SizeL
)

// Valid returns true if the size is L or XL.
func (s Size) Valid() bool {
	return s == SizeL || s == SizeXL
}

// A Pizza is a variant baked in a given size. The recipe is fixed when the
// pizza is created and never changes.
type Pizza struct {
	variant Variant
	recipe  Recipe
	size    Size
}

// New creates a pizza of the given variant in the default size.
func New(v Variant) *Pizza {
	return MakeBuilder().Build(v)
}

// Variant returns the variant of the pizza.
func (p *Pizza) Variant() Variant {
	return p.variant
}

// Recipe returns the recipe of the pizza.
func (p *Pizza) Recipe() Recipe {
	return p.recipe
}

// Size returns the size of the pizza. The size is validated here rather than
// when the pizza is built.
func (p *Pizza) Size() (Size, error) {
	if !p.size.Valid() {
		return "", fmt.Errorf("%w: %q (only L or XL)", ErrInvalidSize, string(p.size))
	}

	return p.size, nil
}

// Comparable returns true if other is a pizza.
func (p *Pizza) Comparable(other any) bool {
	return asPizza(other) != nil
}

// Equal returns true if other is a pizza with the same recipe and size. Values
// that are not pizzas are never equal.
func (p *Pizza) Equal(other any) bool {
	o := asPizza(other)
	if o == nil || p == nil {
		return false
	}

	return p.recipe.Equal(o.recipe) && p.size == o.size
}

func asPizza(v any) *Pizza {
	switch o := v.(type) {
	case *Pizza:
		return o
	case Pizza:
		return &o
	default:
		return nil
	}
}

// Entries returns a single entry mapping the variant name to the recipe.
func (p *Pizza) Entries() map[string]Recipe {
	return map[string]Recipe{p.variant.String(): p.recipe}
}

func (p *Pizza) String() string {
	return fmt.Sprintf("%s (%s)", p.variant, string(p.size))
}
