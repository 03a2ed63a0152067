package catalog

import "github.com/woodendoors/doorshowcase/models"

var seedProducts = []models.Product{
	{
		ID:                 "door-001",
		Name:               "Classic Mahogany Entry Door",
		Description:        "Elegant solid mahogany door with traditional panel design, perfect for a sophisticated entrance.",
		Price:              1299.99,
		DiscountPercentage: 10,
		ImageURL:           "https://images.unsplash.com/photo-1517142089942-ba376ce32a2e?w=800&q=80",
		Category:           "Classic",
		Featured:           true,
	},
	{
		ID:          "door-002",
		Name:        "Modern Minimalist Door",
		Description: "Clean lines and sleek design make this door perfect for contemporary homes.",
		Price:       899.99,
		ImageURL:    "https://images.unsplash.com/photo-1506377295352-e3154d43ea9e?w=800&q=80",
		Category:    "Modern",
	},
	{
		ID:                 "door-003",
		Name:               "Rustic Barn Door",
		Description:        "Authentic barn-style sliding door with distressed wood finish for a rustic touch.",
		Price:              749.99,
		DiscountPercentage: 5,
		ImageURL:           "https://images.unsplash.com/photo-1600489000022-c2086d79f9d4?w=800&q=80",
		Category:           "Barn-style",
	},
	{
		ID:          "door-004",
		Name:        "Carved Teak Masterpiece",
		Description: "Intricately hand-carved teak door featuring traditional patterns and designs.",
		Price:       1899.99,
		ImageURL:    "https://images.unsplash.com/photo-1558346547-4439467bd1d5?w=800&q=80",
		Category:    "Carved",
		Featured:    true,
	},
	{
		ID:          "door-005",
		Name:        "Glass Panel Oak Door",
		Description: "Solid oak door with frosted glass panels allowing light while maintaining privacy.",
		Price:       1099.99,
		ImageURL:    "https://images.unsplash.com/photo-1600566752355-35792bedcfea?w=800&q=80",
		Category:    "Modern",
	},
	{
		ID:                 "door-006",
		Name:               "French Double Doors",
		Description:        "Classic French-style double doors with multiple glass panels, perfect for patios or gardens.",
		Price:              1599.99,
		DiscountPercentage: 15,
		ImageURL:           "https://images.unsplash.com/photo-1513694203232-719a280e022f?w=800&q=80",
		Category:           "Classic",
	},
	{
		ID:          "door-007",
		Name:        "Contemporary Pivot Door",
		Description: "Modern pivot door design with sleek hardware and clean lines for a dramatic entrance.",
		Price:       2199.99,
		ImageURL:    "https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=800&q=80",
		Category:    "Modern",
		Featured:    true,
	},
	{
		ID:          "door-008",
		Name:        "Traditional Paneled Door",
		Description: "Six-panel solid wood door with classic design that suits any traditional home.",
		Price:       699.99,
		ImageURL:    "https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800&q=80",
		Category:    "Classic",
	},
	{
		ID:          "door-009",
		Name:        "Custom Stained Glass Door",
		Description: "Elegant door featuring custom stained glass artwork that creates beautiful light patterns.",
		Price:       2499.99,
		ImageURL:    "https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=800&q=80",
		Category:    "Custom",
	},
	{
		ID:                 "door-010",
		Name:               "Reclaimed Wood Barn Door",
		Description:        "Eco-friendly sliding door made from authentic reclaimed barn wood with visible character.",
		Price:              1299.99,
		DiscountPercentage: 8,
		ImageURL:           "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&q=80",
		Category:           "Barn-style",
	},
	{
		ID:          "door-011",
		Name:        "Craftsman Style Door",
		Description: "Arts and Crafts inspired door with characteristic details and quality craftsmanship.",
		Price:       1199.99,
		ImageURL:    "https://images.unsplash.com/photo-1600573472550-8090b5e0745e?w=800&q=80",
		Category:    "Classic",
	},
	{
		ID:                 "door-012",
		Name:               "Minimalist Flush Door",
		Description:        "Clean, simple flush door design with hidden hinges for a seamless modern look.",
		Price:              599.99,
		DiscountPercentage: 12,
		ImageURL:           "https://images.unsplash.com/photo-1600566752447-f4c9fb5d9b59?w=800&q=80",
		Category:           "Modern",
	},
}

var materialOptions = []models.CustomizationOption{
	{ID: "mahogany", Name: "Mahogany", PriceModifier: 200, Thumbnail: "https://images.unsplash.com/photo-1566312296364-2199206933e5?w=200&q=80"},
	{ID: "narra", Name: "Narra", PriceModifier: 150, Thumbnail: "https://images.unsplash.com/photo-1580414057403-c5f451f30e1c?w=200&q=80"},
	{ID: "oak", Name: "Oak", PriceModifier: 100, Thumbnail: "https://images.unsplash.com/photo-1604514463843-9456e0be3dcf?w=200&q=80"},
	{ID: "pine", Name: "Pine", PriceModifier: 50, Thumbnail: "https://images.unsplash.com/photo-1581539250439-c96689b516dd?w=200&q=80"},
	{ID: "teak", Name: "Teak", PriceModifier: 250, Thumbnail: "https://images.unsplash.com/photo-1581539250439-c96689b516dd?w=200&q=80"},
}

var finishOptions = []models.CustomizationOption{
	{ID: "natural", Name: "Natural Wood", PriceModifier: 0, Thumbnail: "https://images.unsplash.com/photo-1566312296364-2199206933e5?w=200&q=80"},
	{ID: "walnut", Name: "Walnut", PriceModifier: 50, Thumbnail: "https://images.unsplash.com/photo-1580414057403-c5f451f30e1c?w=200&q=80"},
	{ID: "white", Name: "White", PriceModifier: 30, Thumbnail: "https://images.unsplash.com/photo-1581539250439-c96689b516dd?w=200&q=80"},
	{ID: "black", Name: "Black", PriceModifier: 30, Thumbnail: "https://images.unsplash.com/photo-1604514463843-9456e0be3dcf?w=200&q=80"},
	{ID: "custom", Name: "Custom Stain", PriceModifier: 100, Thumbnail: "https://images.unsplash.com/photo-1580414057403-c5f451f30e1c?w=200&q=80"},
}

var glassOptions = []models.CustomizationOption{
	{ID: "none", Name: "No Glass", PriceModifier: 0},
	{ID: "clear", Name: "Clear Glass", PriceModifier: 100},
	{ID: "frosted", Name: "Frosted Glass", PriceModifier: 150},
	{ID: "stained", Name: "Stained Glass", PriceModifier: 300},
}
