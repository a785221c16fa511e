package shopify

import (
	"strings"

	"storefront/internal/domain/entity"
)

type moneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type imageConnection struct {
	Edges []struct {
		Node struct {
			URL     string  `json:"url"`
			AltText *string `json:"altText"`
		} `json:"node"`
	} `json:"edges"`
}

type variantNode struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	PriceV2          moneyV2 `json:"priceV2"`
	AvailableForSale bool    `json:"availableForSale"`
}

type productNode struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DescriptionHTML string          `json:"descriptionHtml"`
	Handle          string          `json:"handle"`
	ProductType     string          `json:"productType"`
	Tags            []string        `json:"tags"`
	Images          imageConnection `json:"images"`
	PriceRange      struct {
		MinVariantPrice moneyV2 `json:"minVariantPrice"`
	} `json:"priceRange"`
	CompareAtPriceRange struct {
		MinVariantPrice moneyV2 `json:"minVariantPrice"`
	} `json:"compareAtPriceRange"`
	Variants struct {
		Edges []struct {
			Node variantNode `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type productConnection struct {
	Edges []struct {
		Node productNode `json:"node"`
	} `json:"edges"`
}

type cartLineNode struct {
	ID          string `json:"id"`
	Quantity    int    `json:"quantity"`
	Merchandise struct {
		ID      string  `json:"id"`
		Title   string  `json:"title"`
		PriceV2 moneyV2 `json:"priceV2"`
		Product struct {
			Title  string          `json:"title"`
			Handle string          `json:"handle"`
			Images imageConnection `json:"images"`
		} `json:"product"`
	} `json:"merchandise"`
}

type cartNode struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkoutUrl"`
	Lines       struct {
		Edges []struct {
			Node cartLineNode `json:"node"`
		} `json:"edges"`
	} `json:"lines"`
	Cost struct {
		TotalAmount    moneyV2 `json:"totalAmount"`
		SubtotalAmount moneyV2 `json:"subtotalAmount"`
	} `json:"cost"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type cartPayload struct {
	Cart       *cartNode   `json:"cart"`
	UserErrors []userError `json:"userErrors"`
}

func (m moneyV2) toEntity() entity.Money {
	return entity.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func (c imageConnection) toEntities() []entity.Image {
	images := make([]entity.Image, 0, len(c.Edges))
	for _, edge := range c.Edges {
		image := entity.Image{URL: edge.Node.URL}
		if edge.Node.AltText != nil {
			image.AltText = *edge.Node.AltText
		}
		images = append(images, image)
	}

	return images
}

func (p *productNode) toEntity() *entity.Product {
	product := &entity.Product{
		ID:              p.ID,
		Title:           p.Title,
		Handle:          p.Handle,
		Description:     p.Description,
		DescriptionHTML: p.DescriptionHTML,
		ProductType:     p.ProductType,
		Tags:            p.Tags,
		Images:          p.Images.toEntities(),
		Price:           p.PriceRange.MinVariantPrice.toEntity(),
		Variants:        make([]entity.ProductVariant, 0, len(p.Variants.Edges)),
	}

	// The storefront reports "0.0" when no variant has a compare-at price.
	if compareAt := p.CompareAtPriceRange.MinVariantPrice; hasAmount(compareAt.Amount) {
		money := compareAt.toEntity()
		product.CompareAtPrice = &money
	}

	for _, edge := range p.Variants.Edges {
		product.Variants = append(product.Variants, entity.ProductVariant{
			ID:               edge.Node.ID,
			Title:            edge.Node.Title,
			AvailableForSale: edge.Node.AvailableForSale,
			Price:            edge.Node.PriceV2.toEntity(),
		})
	}

	return product
}

func (c productConnection) toEntities() []*entity.Product {
	products := make([]*entity.Product, 0, len(c.Edges))
	for i := range c.Edges {
		products = append(products, c.Edges[i].Node.toEntity())
	}

	return products
}

func (c *cartNode) toEntity() *entity.Cart {
	cart := &entity.Cart{
		ID:          c.ID,
		CheckoutURL: c.CheckoutURL,
		Lines:       make([]entity.CartLine, 0, len(c.Lines.Edges)),
		Cost: entity.CartCost{
			TotalAmount:    c.Cost.TotalAmount.toEntity(),
			SubtotalAmount: c.Cost.SubtotalAmount.toEntity(),
		},
	}

	for _, edge := range c.Lines.Edges {
		node := edge.Node
		snapshot := entity.ProductSnapshot{
			Title:  node.Merchandise.Product.Title,
			Handle: node.Merchandise.Product.Handle,
		}
		if images := node.Merchandise.Product.Images.toEntities(); len(images) > 0 {
			snapshot.Image = &images[0]
		}

		cart.Lines = append(cart.Lines, entity.CartLine{
			ID:       node.ID,
			Quantity: node.Quantity,
			Merchandise: entity.Merchandise{
				ID:      node.Merchandise.ID,
				Title:   node.Merchandise.Title,
				Price:   node.Merchandise.PriceV2.toEntity(),
				Product: snapshot,
			},
		})
	}

	return cart
}

func hasAmount(amount string) bool {
	trimmed := strings.Trim(amount, "0.")

	return trimmed != ""
}
