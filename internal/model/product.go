package model

// Product represents a catalog product document
type Product struct {
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Price       float64  `json:"price" bson:"price"`
	Category    string   `json:"category" bson:"category"`
	InStock     bool     `json:"in_stock" bson:"in_stock"`
	ImageURL    string   `json:"image_url" bson:"image_url"`
	Brand       string   `json:"brand" bson:"brand"`
	SugarFree   bool     `json:"sugar_free" bson:"sugar_free"`
	Tags        []string `json:"tags" bson:"tags"`
}
