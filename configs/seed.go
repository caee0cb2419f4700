package configs

import (
	"log"

	"github.com/google/uuid"

	"tastyeats/entity"
)

// SeedMenu gives a fresh install something to render. Items are matched by
// name so restarting the server never duplicates them.
func SeedMenu() error {
	db := DB()

	starters := []entity.MenuItem{
		{Name: "Paneer Tikka", Description: "Chargrilled cottage cheese with mint chutney", Price: 180, Category: entity.CategoryAppetizers, ImageUrl: "/images/paneer-tikka.jpg", Rating: 4.5},
		{Name: "Veg Spring Rolls", Description: "Crispy rolls stuffed with seasonal vegetables", Price: 120, Category: entity.CategoryAppetizers, ImageUrl: "/images/spring-rolls.jpg", Rating: 4.2},
		{Name: "Butter Chicken", Description: "Tandoori chicken simmered in tomato butter gravy", Price: 260, Category: entity.CategoryMains, ImageUrl: "/images/butter-chicken.jpg", Rating: 4.7},
		{Name: "Masala Dosa", Description: "Golden crepe with spiced potato filling", Price: 100, Category: entity.CategoryMains, ImageUrl: "/images/masala-dosa.jpg", Rating: 4.6},
		{Name: "Hyderabadi Biryani", Description: "Fragrant basmati rice layered with chicken", Price: 240, Category: entity.CategoryMains, ImageUrl: "/images/biryani.jpg", Rating: 4.8},
		{Name: "Gulab Jamun", Description: "Warm milk dumplings in cardamom syrup", Price: 80, Category: entity.CategoryDesserts, ImageUrl: "/images/gulab-jamun.jpg", Rating: 4.4},
		{Name: "Rasmalai", Description: "Saffron milk cakes topped with pistachio", Price: 90, Category: entity.CategoryDesserts, ImageUrl: "/images/rasmalai.jpg", Rating: 4.3},
		{Name: "Masala Chai", Description: "Spiced tea brewed with jaggery", Price: 40, Category: entity.CategoryBeverages, ImageUrl: "/images/masala-chai.jpg", Rating: 4.5},
		{Name: "Sweet Lassi", Description: "Thick churned yogurt with rose water", Price: 60, Category: entity.CategoryBeverages, ImageUrl: "/images/lassi.jpg", Rating: 4.1},
	}

	for _, item := range starters {
		var existing entity.MenuItem
		err := db.Where(entity.MenuItem{Name: item.Name}).
			Attrs(entity.MenuItem{
				ItemID:      uuid.NewString(),
				Description: item.Description,
				Price:       item.Price,
				Category:    item.Category,
				ImageUrl:    item.ImageUrl,
				Rating:      item.Rating,
			}).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}

	log.Println("menu seeded")
	return nil
}
