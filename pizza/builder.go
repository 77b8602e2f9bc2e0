package pizza

// Builder can build pizzas.
type Builder struct {
	size Size
}

// MakeBuilder creates a builder with the default size.
func MakeBuilder() Builder {
	return Builder{
		size: DefaultSize,
	}
}

// WithSize sets the size of the pizza to build. The size is not checked until
// it is read.
func (b Builder) WithSize(size Size) Builder {
	b.size = size
	return b
}

// Build creates a pizza of the given variant.
func (b Builder) Build(v Variant) *Pizza {
	return &Pizza{
		variant: v,
		recipe:  v.Recipe(),
		size:    b.size,
	}
}
