package models

// Price bounds for a restaurant pizza, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza associates a pizza with a restaurant at a given price
// No foreign keys are declared: references are checked before insert
type RestaurantPizza struct {
	ID           int `gorm:"primaryKey" json:"id"`
	Price        int `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30" json:"price"`
	PizzaID      int `gorm:"not null;index" json:"pizza_id"`
	RestaurantID int `gorm:"not null;index" json:"restaurant_id"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// RestaurantPizzaItem is one entry of a restaurant's restaurant_pizzas list
type RestaurantPizzaItem struct {
	ID           int          `json:"id"`
	Pizza        PizzaSummary `json:"pizza"`
	PizzaID      int          `json:"pizza_id"`
	Price        int          `json:"price"`
	RestaurantID int          `json:"restaurant_id"`
}

// RestaurantPizzaCreated is returned after a successful insert
type RestaurantPizzaCreated struct {
	ID           int               `json:"id"`
	Pizza        PizzaSummary      `json:"pizza"`
	PizzaID      int               `json:"pizza_id"`
	Price        int               `json:"price"`
	Restaurant   RestaurantSummary `json:"restaurant"`
	RestaurantID int               `json:"restaurant_id"`
}

// CreateRestaurantPizzaRequest is the raw POST /restaurant_pizzas payload.
// Fields stay untyped so that strings, numbers and booleans can be coerced
// in the same order the endpoint validates them.
type CreateRestaurantPizzaRequest struct {
	Price        any `json:"price" swaggertype:"integer" example:"15"`
	PizzaID      any `json:"pizza_id" swaggertype:"integer" example:"1"`
	RestaurantID any `json:"restaurant_id" swaggertype:"integer" example:"1"`
}
