package pizza_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pizzeria/pizza"
)

var _ = Describe("Pizza", func() {
	DescribeTable("recipes",
		func(v pizza.Variant, ingredients []string) {
			p := pizza.New(v)

			Expect(p.Recipe().Len()).To(Equal(len(ingredients)))
			Expect(p.Recipe().Ingredients()).To(ConsistOf(ingredients))
		},
		Entry("margherita", pizza.Margherita,
			[]string{"tomato sauce", "mozzarella", "tomatoes"}),
		Entry("pepperoni", pizza.Pepperoni,
			[]string{"tomato sauce", "mozzarella", "pepperoni"}),
		Entry("hawaiian", pizza.Hawaiian,
			[]string{"tomato sauce", "mozzarella", "chicken", "pineapples"}),
	)

	It("should default to size L", func() {
		size, err := pizza.New(pizza.Hawaiian).Size()

		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(pizza.SizeL))
	})

	It("should accept XL", func() {
		p := pizza.MakeBuilder().WithSize(pizza.SizeXL).Build(pizza.Pepperoni)

		size, err := p.Size()

		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(pizza.SizeXL))
	})

	It("should not validate the size when building", func() {
		p := pizza.MakeBuilder().WithSize("M").Build(pizza.Margherita)

		Expect(p).NotTo(BeNil())
		Expect(p.Variant()).To(Equal(pizza.Margherita))
	})

	DescribeTable("invalid sizes",
		func(size string) {
			p := pizza.MakeBuilder().WithSize(pizza.Size(size)).Build(pizza.Margherita)

			_, err := p.Size()

			Expect(err).To(MatchError(pizza.ErrInvalidSize))
			Expect(err.Error()).To(ContainSubstring(size))
		},
		Entry("M", "M"),
		Entry("lower case", "l"),
		Entry("XXL", "XXL"),
		Entry("empty", ""),
	)

	Context("when comparing", func() {
		It("should equal the same variant in the same size", func() {
			Expect(pizza.New(pizza.Margherita).Equal(pizza.New(pizza.Margherita))).
				To(BeTrue())
		})

		It("should accept a pizza value", func() {
			p := pizza.New(pizza.Pepperoni)

			Expect(p.Equal(*pizza.New(pizza.Pepperoni))).To(BeTrue())
		})

		It("should not equal a different variant", func() {
			Expect(pizza.New(pizza.Margherita).Equal(pizza.New(pizza.Pepperoni))).
				To(BeFalse())
			Expect(pizza.New(pizza.Pepperoni).Equal(pizza.New(pizza.Hawaiian))).
				To(BeFalse())
		})

		It("should not equal a different size", func() {
			xl := pizza.MakeBuilder().WithSize(pizza.SizeXL).Build(pizza.Margherita)

			Expect(pizza.New(pizza.Margherita).Equal(xl)).To(BeFalse())
		})

		It("should compare invalid sizes without failing", func() {
			m1 := pizza.MakeBuilder().WithSize("M").Build(pizza.Margherita)
			m2 := pizza.MakeBuilder().WithSize("M").Build(pizza.Margherita)

			Expect(m1.Equal(m2)).To(BeTrue())
		})

		DescribeTable("values that are not pizzas",
			func(other any) {
				p := pizza.New(pizza.Margherita)

				Expect(p.Comparable(other)).To(BeFalse())
				Expect(p.Equal(other)).To(BeFalse())
			},
			Entry("nil", nil),
			Entry("nil pizza pointer", (*pizza.Pizza)(nil)),
			Entry("string", "margherita"),
			Entry("int", 42),
			Entry("recipe", pizza.Margherita.Recipe()),
		)

		It("should be comparable to another pizza", func() {
			Expect(pizza.New(pizza.Hawaiian).Comparable(pizza.New(pizza.Margherita))).
				To(BeTrue())
		})
	})

	It("should list a single entry", func() {
		entries := pizza.New(pizza.Hawaiian).Entries()

		Expect(entries).To(HaveLen(1))
		Expect(entries).To(HaveKey("Hawaiian"))
		Expect(entries["Hawaiian"].Equal(pizza.Hawaiian.Recipe())).To(BeTrue())
	})

	It("should not share the recipe between pizzas", func() {
		p := pizza.New(pizza.Margherita)

		ingredients := p.Recipe().Ingredients()
		ingredients[0] = "anchovies"

		Expect(p.Recipe().Contains("anchovies")).To(BeFalse())
		Expect(pizza.New(pizza.Margherita).Equal(p)).To(BeTrue())
	})
})
