package models

// Pizza represents a pizza row
// Ingredients is stored as a comma-separated list of ingredient names
type Pizza struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `gorm:"not null" json:"ingredients"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// PizzaSummary is the public representation of a pizza
type PizzaSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// Summary converts the row into its response shape
func (p Pizza) Summary() PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}
