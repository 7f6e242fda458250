package types

// SelectedOption is the value a customer picked for one variant option,
// together with the price modifier embedded at selection time.
type SelectedOption struct {
	Value         string `json:"value"`
	PriceModifier int    `json:"priceModifier,omitempty"`
}

// VariantSelection maps variant option names to the chosen values.
type VariantSelection map[string]SelectedOption

// ModifierSum returns the total signed price adjustment across all selections.
func (v VariantSelection) ModifierSum() int {
	total := 0
	for _, opt := range v {
		total += opt.PriceModifier
	}
	return total
}

// VariantOption is one configurable axis declared on a catalog product.
type VariantOption struct {
	Name   string              `json:"name"`
	Values []VariantOptionValue `json:"values"`
}

// VariantOptionValue is one selectable value with its catalog price modifier.
type VariantOptionValue struct {
	Label         string `json:"label"`
	PriceModifier int    `json:"priceModifier"`
}

// VariantOptions is the declared option table stored on a product.
type VariantOptions []VariantOption
