package store

import "github.com/yeremiapane/seblak-listyaning/models"

func level(s string) *string { return &s }

// DefaultMenuItems is the Seblak Listyaning opening menu.
func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			Name: "Seblak Original", Description: "Kerupuk basah, telur dan sayuran dengan kuah kencur pedas",
			Price: 15000, Category: "seblak", Image: "/images/seblak-original.jpg", SpicyLevel: level("level 1-5"),
			StockQuantity: 50, LowStockThreshold: 10, Unit: "porsi", IsAvailable: 1, Rating: 48, ReviewCount: 120,
		},
		{
			Name: "Seblak Ceker", Description: "Seblak original dengan ceker ayam empuk",
			Price: 18000, Category: "seblak", Image: "/images/seblak-ceker.jpg", SpicyLevel: level("level 1-5"),
			StockQuantity: 30, LowStockThreshold: 8, Unit: "porsi", IsAvailable: 1, Rating: 47, ReviewCount: 86,
		},
		{
			Name: "Seblak Seafood", Description: "Udang, cumi dan bakso ikan dengan kuah seblak",
			Price: 25000, Category: "seblak", Image: "/images/seblak-seafood.jpg", SpicyLevel: level("level 1-5"),
			StockQuantity: 20, LowStockThreshold: 5, Unit: "porsi", IsAvailable: 1, Rating: 49, ReviewCount: 64,
		},
		{
			Name: "Seblak Bakso Sosis", Description: "Seblak dengan bakso sapi dan sosis",
			Price: 20000, Category: "seblak", Image: "/images/seblak-bakso.jpg", SpicyLevel: level("level 1-5"),
			StockQuantity: 25, LowStockThreshold: 5, Unit: "porsi", IsAvailable: 1, Rating: 46, ReviewCount: 51,
		},
		{
			Name: "Seblak Mie", Description: "Mie kuning, kerupuk dan telur dalam kuah pedas",
			Price: 17000, Category: "seblak", Image: "/images/seblak-mie.jpg", SpicyLevel: level("level 1-5"),
			StockQuantity: 35, LowStockThreshold: 8, Unit: "porsi", IsAvailable: 1, Rating: 45, ReviewCount: 40,
		},
		{
			Name: "Makaroni Pedas", Description: "Makaroni goreng renyah bumbu cabai",
			Price: 10000, Category: "camilan", Image: "/images/makaroni.jpg", SpicyLevel: level("pedas"),
			StockQuantity: 40, LowStockThreshold: 10, Unit: "pcs", IsAvailable: 1, Rating: 44, ReviewCount: 22,
		},
		{
			Name: "Cireng Rujak", Description: "Cireng goreng dengan sambal rujak",
			Price: 10000, Category: "camilan", Image: "/images/cireng.jpg",
			StockQuantity: 30, LowStockThreshold: 8, Unit: "porsi", IsAvailable: 1, Rating: 45, ReviewCount: 18,
		},
		{
			Name: "Basreng", Description: "Bakso goreng iris pedas daun jeruk",
			Price: 12000, Category: "camilan", Image: "/images/basreng.jpg", SpicyLevel: level("pedas"),
			StockQuantity: 25, LowStockThreshold: 5, Unit: "pcs", IsAvailable: 1, Rating: 46, ReviewCount: 27,
		},
		{
			Name: "Es Teh Manis", Description: "Teh melati dingin",
			Price: 5000, Category: "minuman", Image: "/images/es-teh.jpg",
			StockQuantity: 100, LowStockThreshold: 20, Unit: "gelas", IsAvailable: 1, Rating: 45, ReviewCount: 95,
		},
		{
			Name: "Es Jeruk", Description: "Jeruk peras segar dengan es",
			Price: 7000, Category: "minuman", Image: "/images/es-jeruk.jpg",
			StockQuantity: 60, LowStockThreshold: 15, Unit: "gelas", IsAvailable: 1, Rating: 46, ReviewCount: 58,
		},
		{
			Name: "Es Kopi Susu Aren", Description: "Kopi susu gula aren",
			Price: 15000, Category: "minuman", Image: "/images/kopi-aren.jpg",
			StockQuantity: 0, LowStockThreshold: 5, Unit: "gelas", IsAvailable: 0, Rating: 47, ReviewCount: 12,
		},
	}
}
