package models

import (
	"github.com/goccy/go-json"
)

// Category is the nested category object of a catalog product.
type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// Product is a catalog item as served by the upstream API.
// The original JSON object is kept so data responses echo every upstream field.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Category    *Category `json:"category,omitempty"`
	Images      []string  `json:"images"`
	Description string    `json:"description,omitempty"`

	raw json.RawMessage
}

type productFields Product

func (p *Product) UnmarshalJSON(data []byte) error {
	var fields productFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*p = Product(fields)
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	return json.Marshal(productFields(p))
}

func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
