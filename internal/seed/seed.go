package seed

import (
	"context"

	"storefront-service/internal/model"
	"storefront-service/prometheus"

	"go.uber.org/zap"
)

// ProductCatalog is the slice of the product store that seeding needs
type ProductCatalog interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, p model.Product) (string, error)
}

// Products is the fixed sample catalog inserted into an empty store
var Products = []model.Product{
	{
		Title:       "MoreNutrition Clear Whey – Sugar Free",
		Description: "Refreshing high-protein, sugar‑free clear whey isolate with natural flavors.",
		Price:       29.99,
		Category:    "Protein",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1517677208171-0bc6725a3e60?q=80&w=1200&auto=format&fit=crop",
		Brand:       "MoreNutrition",
		SugarFree:   true,
		Tags:        []string{"protein", "sugar-free", "low-calorie"},
	},
	{
		Title:       "MoreNutrition Vegan Protein – Chocolate",
		Description: "Plant-based protein blend, sweetened without sugar. Smooth chocolate taste.",
		Price:       24.5,
		Category:    "Protein",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1549575810-45d1344b9b2a?q=80&w=1200&auto=format&fit=crop",
		Brand:       "MoreNutrition",
		SugarFree:   true,
		Tags:        []string{"vegan", "protein", "dairy-free"},
	},
	{
		Title:       "MoreNutrition Vitamin Gummies – Sugar Free",
		Description: "Daily multivitamin gummies with zero sugar and natural fruit flavors.",
		Price:       14.9,
		Category:    "Vitamins",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1576092768241-dec231879fc3?q=80&w=1200&auto=format&fit=crop",
		Brand:       "MoreNutrition",
		SugarFree:   true,
		Tags:        []string{"vitamins", "gummies", "immune"},
	},
	{
		Title:       "MoreNutrition Flavor Drops – Sugar Free Vanilla",
		Description: "Calorie‑free flavor drops to sweeten shakes, yogurt, and coffee.",
		Price:       9.99,
		Category:    "Flavoring",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1519681393784-d120267933ba?q=80&w=1200&auto=format&fit=crop",
		Brand:       "MoreNutrition",
		SugarFree:   true,
		Tags:        []string{"flavor", "vanilla", "drops"},
	},
	{
		Title:       "MoreNutrition Zero Syrup – Chocolate",
		Description: "Rich chocolate syrup with zero sugar – perfect for pancakes or oats.",
		Price:       6.99,
		Category:    "Syrups",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1546549039-98bf4f8c71d1?q=80&w=1200&auto=format&fit=crop",
		Brand:       "MoreNutrition",
		SugarFree:   true,
		Tags:        []string{"syrup", "zero", "topping"},
	},
}

// Run populates an empty product collection with the sample catalog. It runs
// once at startup, before the server accepts connections. Every failure is
// logged and swallowed: seeding must never prevent the service from starting.
func Run(ctx context.Context, catalog ProductCatalog, log *zap.Logger) {
	count, err := catalog.Count(ctx)
	if err != nil {
		log.Warn("Skipping product seeding, count failed", zap.Error(err))
		return
	}
	if count > 0 {
		log.Info("Product collection already populated, skipping seeding",
			zap.Int64("count", count))
		return
	}

	seeded := 0
	for _, p := range Products {
		if _, err := catalog.Insert(ctx, p); err != nil {
			log.Warn("Failed to seed product",
				zap.String("title", p.Title),
				zap.Error(err))
			continue
		}
		prometheus.RecordSeededProduct()
		seeded++
	}

	log.Info("Product seeding completed", zap.Int("seeded", seeded))
}
