package models

// Restaurant represents a restaurant row
type Restaurant struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `gorm:"not null" json:"address"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// RestaurantSummary is a restaurant without its pizza associations
type RestaurantSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Summary converts the row into its response shape
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

// RestaurantDetail is a restaurant together with every pizza it serves
type RestaurantDetail struct {
	ID               int                   `json:"id"`
	Name             string                `json:"name"`
	Address          string                `json:"address"`
	RestaurantPizzas []RestaurantPizzaItem `json:"restaurant_pizzas"`
}
