package entities

type Recipe struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Instructions string `gorm:"type:text" json:"instructions"`
	Time         int    `json:"time"` // minutes
	Difficulty   string `json:"difficulty"`

	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID" json:"-"`
	Supplies    []*RecipeSupply     `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}

// Ingredient names are stored lowercase; uniqueness is case-insensitive
// because the canonical form is the only form that is ever persisted.
type Ingredient struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"uniqueIndex" json:"name"`
	Price    *float64 `json:"price,omitempty"`
	ItemType *string  `json:"item_type,omitempty"`
	Timestamp
}

type Supply struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
	Timestamp
}

type RecipeIngredient struct {
	RecipeID     uint    `gorm:"primaryKey" json:"recipe_id"`
	IngredientID uint    `gorm:"primaryKey" json:"ingredient_id"`
	AmountUnits  *string `json:"amount_units,omitempty"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

type RecipeSupply struct {
	RecipeID uint `gorm:"primaryKey" json:"recipe_id"`
	SupplyID uint `gorm:"primaryKey" json:"supply_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Supply *Supply `gorm:"foreignKey:SupplyID"`
}
