package favorite

import "time"

// Favorite links a user to a car. The car may since have been deleted.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CarID     string    `json:"carId"`
	CreatedAt time.Time `json:"createdAt"`
}
