package pizza

import "fmt"

// Variant is one of the kinds of pizza on the menu.
type Variant int

// Enumeration of the variants, in menu order.
const (
	Margherita Variant = iota
	Pepperoni
	Hawaiian
	numVariants
)

type variantInfo struct {
	name        string
	key         string
	ingredients []string
}

var variantTable = [numVariants]variantInfo{
	Margherita: {
		name:        "Margherita",
		key:         "margherita",
		ingredients: []string{"tomato sauce", "mozzarella", "tomatoes"},
	},
	Pepperoni: {
		name:        "Pepperoni",
		key:         "pepperoni",
		ingredients: []string{"tomato sauce", "mozzarella", "pepperoni"},
	},
	Hawaiian: {
		name:        "Hawaiian",
		key:         "hawaiian",
		ingredients: []string{"tomato sauce", "mozzarella", "chicken", "pineapples"},
	},
}

func (v Variant) info() variantInfo {
	if v < 0 || v >= numVariants {
		panic(fmt.Sprintf("pizza: unknown variant %d", int(v)))
	}

	return variantTable[v]
}

// String returns the display name of the variant, e.g. "Margherita".
func (v Variant) String() string {
	return v.info().name
}

// Key returns the name used to order the variant, e.g. "margherita".
func (v Variant) Key() string {
	return v.info().key
}

// Recipe returns the fixed recipe of the variant.
func (v Variant) Recipe() Recipe {
	return NewRecipe(v.info().ingredients...)
}

// Variants returns all the variants in menu order.
func Variants() []Variant {
	variants := make([]Variant, 0, numVariants)
	for v := Variant(0); v < numVariants; v++ {
		variants = append(variants, v)
	}

	return variants
}

// Lookup finds the variant ordered by the given name. The match is exact and
// case-sensitive.
func Lookup(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Key() == name {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (choose one of margherita, pepperoni, hawaiian)",
		ErrUnknownVariant, name)
}
