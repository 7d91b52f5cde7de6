package models

import "time"

// Product is a catalogue item. PriceCOP is the amount in Colombian pesos;
// Image is an optional data-URI or URL.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PriceCOP  float64   `json:"priceCOP"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductInput holds the caller-supplied fields for a new product.
type ProductInput struct {
	Name     string
	PriceCOP float64
	Image    string
}

// ProductUpdate holds a partial edit; nil fields are left unchanged.
type ProductUpdate struct {
	Name     *string
	PriceCOP *float64
	Image    *string
}

// Apply merges the non-nil fields into p. Timestamps are the caller's job.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.PriceCOP != nil {
		p.PriceCOP = *u.PriceCOP
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
}
