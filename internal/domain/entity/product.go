package entity

// Product is a catalog entry with its sellable variants.
type Product struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Handle          string           `json:"handle"`
	Description     string           `json:"description"`
	DescriptionHTML string           `json:"description_html,omitempty"`
	ProductType     string           `json:"product_type,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	Images          []Image          `json:"images"`
	Price           Money            `json:"price"`
	CompareAtPrice  *Money           `json:"compare_at_price,omitempty"`
	Variants        []ProductVariant `json:"variants"`
}

// ProductVariant is a purchasable option of a product. Its ID is the
// merchandise reference used when adding cart lines.
type ProductVariant struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	AvailableForSale bool   `json:"available_for_sale"`
	Price            Money  `json:"price"`
}

// DefaultVariant returns the first variant available for sale, falling back to the first variant.
func (p *Product) DefaultVariant() (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.AvailableForSale {
			return v, true
		}
	}
	if len(p.Variants) > 0 {
		return p.Variants[0], true
	}

	return ProductVariant{}, false
}
