package models

// Product is immutable catalogue reference data. Prices are whole KES.
type Product struct {
	ProductID   string            `json:"id" bson:"productid"`
	Slug        string            `json:"slug" bson:"slug"`
	Name        string            `json:"name" bson:"name"`
	Brand       string            `json:"brand" bson:"brand"`
	Price       int64             `json:"price" bson:"price"`
	Category    string            `json:"category" bson:"category"`
	Description string            `json:"description,omitempty" bson:"description,omitempty"`
	Warranty    string            `json:"warrantyInfo,omitempty" bson:"warranty,omitempty"`
	KeyFeatures []string          `json:"keyFeatures,omitempty" bson:"keyfeatures,omitempty"`
	Specs       map[string]string `json:"technicalSpecs,omitempty" bson:"specs,omitempty"`
	Images      []string          `json:"images,omitempty" bson:"images,omitempty"`
}

// ProductPage is one page of a cursor-paginated catalogue listing.
// NextCursor is nil once the catalogue is exhausted.
type ProductPage struct {
	Data       []Product `json:"data"`
	NextCursor *int64    `json:"nextCursor"`
}
