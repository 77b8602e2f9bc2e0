package pizza

import "strings"

// A Recipe is the set of ingredients that a pizza is made of. A Recipe is
// immutable once created.
type Recipe struct {
	ingredients []string
	index       map[string]struct{}
}

// NewRecipe creates a recipe from the given ingredients. Duplicated
// ingredients are only kept once.
func NewRecipe(ingredients ...string) Recipe {
	r := Recipe{
		ingredients: make([]string, 0, len(ingredients)),
		index:       make(map[string]struct{}, len(ingredients)),
	}

	for _, ingredient := range ingredients {
		if _, found := r.index[ingredient]; found {
			continue
		}

		r.index[ingredient] = struct{}{}
		r.ingredients = append(r.ingredients, ingredient)
	}

	return r
}

// Len returns the number of ingredients.
func (r Recipe) Len() int {
	return len(r.ingredients)
}

// Contains checks if the ingredient is part of the recipe.
func (r Recipe) Contains(ingredient string) bool {
	_, found := r.index[ingredient]
	return found
}

// Equal returns true if both recipes have the same ingredients, regardless of
// the order they are listed in.
func (r Recipe) Equal(other Recipe) bool {
	if r.Len() != other.Len() {
		return false
	}

	for _, ingredient := range r.ingredients {
		if !other.Contains(ingredient) {
			return false
		}
	}

	return true
}

// Ingredients returns a copy of the ingredients in the order they were added.
func (r Recipe) Ingredients() []string {
	out := make([]string, len(r.ingredients))
	copy(out, r.ingredients)

	return out
}

func (r Recipe) String() string {
	return strings.Join(r.ingredients, ", ")
}
