package configs

import (
	"backend/entity"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the admin account on first boot.
func SeedAdmin(cfg *Config, log *zap.Logger) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog loads the four cafes and their starter menus, carried over from
// the previous deployment's dataset.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	cafes := []entity.Restaurant{
		{
			ID: "hangout-cafe", Name: "Hangout Cafe", Cuisine: "Multi-cuisine",
			PriceRange: "₹200-500", DeliveryTime: "20-30 mins", Rating: 4.5, Reviews: 120,
			Description: "A cozy cafe offering delicious food and great ambiance",
			Images:      []string{"/img/Hangout.jpg"},
		},
		{
			ID: "cafe-house", Name: "Cafe House", Cuisine: "Continental",
			PriceRange: "₹150-400", DeliveryTime: "15-25 mins", Rating: 4.3, Reviews: 95,
			Description: "Fresh continental dishes with a modern twist",
			Images:      []string{"/img/cafeHouse.jpg"},
		},
		{
			ID: "ttmm", Name: "TTMM", Cuisine: "Indian",
			PriceRange: "₹100-300", DeliveryTime: "10-20 mins", Rating: 4.7, Reviews: 150,
			Description: "Authentic Indian flavors with traditional recipes",
			Images:      []string{"/img/ttmm.jpg"},
		},
		{
			ID: "golden-bakery", Name: "Golden Bakery", Cuisine: "Bakery",
			PriceRange: "₹50-200", DeliveryTime: "5-15 mins", Rating: 4.4, Reviews: 80,
			Description: "Fresh baked goods and sweet treats",
			Images:      []string{"/img/golden.jpg"},
		},
	}
	if err := db.Create(&cafes).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{
			ID: "1", RestaurantID: "hangout-cafe", Name: "Margherita Pizza", Price: 299,
			Description:         "Classic tomato and mozzarella pizza",
			DetailedDescription: "Fresh tomato sauce, mozzarella cheese, and basil on a thin crust",
			Category:            "Main Course", Image: "/img/pizza.jpg",
			Ingredients: []string{"Tomato sauce", "Mozzarella", "Basil", "Dough"},
			Allergens:   []string{"Gluten", "Dairy"},
			IsVegetarian: true, PreparationTime: "15-20 mins", Rating: 4.5,
			SpicyLevel: "Mild", ServingSize: "1 pizza", IsAvailable: true,
		},
		{
			ID: "2", RestaurantID: "hangout-cafe", Name: "Cappuccino", Price: 89,
			Description:         "Rich and creamy coffee",
			DetailedDescription: "Espresso with steamed milk and foam",
			Category:            "Beverages", Image: "/img/Cappuccino.jpg",
			Ingredients: []string{"Espresso", "Milk", "Foam"},
			Allergens:   []string{"Dairy"},
			IsVegetarian: true, PreparationTime: "5-10 mins", Rating: 4.3,
			SpicyLevel: "None", ServingSize: "1 cup", IsAvailable: true,
		},
	}
	return db.Create(&items).Error
}

// SeedTables gives every cafe the standard six-table floor plan.
func SeedTables() error {
	db := DB()

	var count int64
	db.Model(&entity.CafeTable{}).Count(&count)
	if count > 0 {
		return nil
	}

	var cafes []entity.Restaurant
	if err := db.Find(&cafes).Error; err != nil {
		return err
	}

	layout := []entity.CafeTable{
		{Number: "T1", Seats: 2, Position: "Window"},
		{Number: "T2", Seats: 2, Position: "Window"},
		{Number: "T3", Seats: 4, Position: "Center"},
		{Number: "T4", Seats: 4, Position: "Center"},
		{Number: "T5", Seats: 6, Position: "Corner"},
		{Number: "T6", Seats: 8, Position: "Private"},
	}
	for _, cafe := range cafes {
		for _, t := range layout {
			t.CafeID = cafe.ID
			if err := db.Create(&t).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
