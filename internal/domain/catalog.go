package domain

import "time"

// Category groups products under a title.
type Category struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is an inventory item. CategoryID is an advisory reference: it is
// not checked on write and may outlive the category it points to.
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductView is a product with its category looked up. Category is nil when
// the referenced category no longer exists.
type ProductView struct {
	Product
	Category *Category
}
