package models

// CartItem is a product plus a purchase quantity. Identity is the
// product id; the cart holds at most one CartItem per product.
type CartItem struct {
	ProductID string `json:"id" bson:"productid"`
	Slug      string `json:"slug" bson:"slug"`
	Name      string `json:"name" bson:"name"`
	Brand     string `json:"brand,omitempty" bson:"brand,omitempty"`
	Category  string `json:"category" bson:"category"`
	Image     string `json:"image,omitempty" bson:"image,omitempty"`
	Price     int64  `json:"price" bson:"price"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

func NewCartItem(p Product) CartItem {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return CartItem{
		ProductID: p.ProductID,
		Slug:      p.Slug,
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		Image:     image,
		Price:     p.Price,
		Quantity:  1,
	}
}
