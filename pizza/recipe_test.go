package pizza_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pizzeria/pizza"
)

var _ = Describe("Recipe", func() {
	It("should collapse duplicated ingredients", func() {
		r := pizza.NewRecipe("mozzarella", "basil", "mozzarella")

		Expect(r.Len()).To(Equal(2))
		Expect(r.Ingredients()).To(Equal([]string{"mozzarella", "basil"}))
	})

	It("should ignore the order when comparing", func() {
		a := pizza.NewRecipe("a", "b", "c")
		b := pizza.NewRecipe("c", "a", "b")

		Expect(a.Equal(b)).To(BeTrue())
	})

	It("should not equal a subset", func() {
		a := pizza.NewRecipe("a", "b", "c")
		b := pizza.NewRecipe("a", "b")

		Expect(a.Equal(b)).To(BeFalse())
		Expect(b.Equal(a)).To(BeFalse())
	})

	It("should not equal a recipe of the same length", func() {
		Expect(pizza.Margherita.Recipe().Equal(pizza.Pepperoni.Recipe())).
			To(BeFalse())
	})

	It("should join the ingredients", func() {
		Expect(pizza.Margherita.Recipe().String()).
			To(Equal("tomato sauce, mozzarella, tomatoes"))
	})
})
