package migration

import (
	"fmt"
	"log"
	"meal-planner/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}, &entities.Supply{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}, &entities.RecipeSupply{}); err != nil {
		log.Fatalf("Error migrating recipe link database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.Customer{}); err != nil {
		log.Fatalf("Error migrating customer database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cart{}, &entities.CartItem{}, &entities.Payment{}); err != nil {
		log.Fatalf("Error migrating cart database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
