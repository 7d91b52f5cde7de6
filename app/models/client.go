package models

import "time"

// Client is a bakery customer.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientInput holds the caller-supplied fields for a new client.
type ClientInput struct {
	Name    string
	Phone   string
	Address string
}

// ClientUpdate holds a partial edit; nil fields are left unchanged.
type ClientUpdate struct {
	Name    *string
	Phone   *string
	Address *string
}

// Apply merges the non-nil fields into c. Timestamps are the caller's job.
func (u ClientUpdate) Apply(c *Client) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
}
