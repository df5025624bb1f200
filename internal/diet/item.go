package diet

import "time"

// Item is one entry of the diet list, e.g. a meal with its description.
type Item struct {
	ID          int       `json:"id"`
	Meal        string    `json:"meal"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
}
