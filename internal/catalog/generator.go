// internal/catalog/generator.go
package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/minshop/storefront-api/internal/models"
)

// Categories is the fixed set the seeded catalog draws from.
var Categories = []string{
	"electronics",
	"clothing",
	"books",
	"home",
	"sports",
	"beauty",
	"toys",
	"automotive",
}

// Generate builds a deterministic mock catalog: the same seed and reference
// time always produce the same products, so contract tests stay reproducible.
func Generate(seed int64, count int, now time.Time) []models.Product {
	rng := rand.New(rand.NewSource(seed))
	products := make([]models.Product, 0, count)

	for i := 1; i <= count; i++ {
		category := Categories[rng.Intn(len(Categories))]
		price := float64(rng.Intn(1000) + 10)
		rating := math.Round((rng.Float64()*2+3)*10) / 10 // 3.0 - 5.0
		reviewCount := rng.Intn(500)
		stock := rng.Intn(50)
		age := time.Duration(rng.Int63n(int64(365 * 24 * time.Hour)))

		products = append(products, models.Product{
			ID:          fmt.Sprintf("product-%d", i),
			Name:        fmt.Sprintf("Product %d - %s", i, titleCase(category)),
			Description: fmt.Sprintf("This is a great %s product with excellent quality and features. Perfect for your needs.", category),
			Price:       price,
			Image:       fmt.Sprintf("https://picsum.photos/300/300?random=%d", i),
			Category:    category,
			InStock:     stock > 0,
			Stock:       stock,
			Rating:      rating,
			ReviewCount: reviewCount,
			CreatedAt:   now.Add(-age),
			UpdatedAt:   now,
		})
	}

	return products
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
