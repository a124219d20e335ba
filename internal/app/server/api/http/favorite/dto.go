package favorite

import "starauto/internal/domain/car"

type listInput struct{}

type listOutput struct {
	Body FavoriteListResponse
}

type FavoriteListResponse struct {
	Success   bool      `json:"success"`
	Count     int       `json:"count"`
	Favorites []car.Car `json:"favorites"`
}

type carInput struct {
	CarID string `path:"carId"`
}

type changeOutput struct {
	Body ChangeResponse
}

// ChangeResponse carries the car ids left in favorites after the change.
type ChangeResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Favorites []string `json:"favorites"`
}

type checkOutput struct {
	Body CheckResponse
}

type CheckResponse struct {
	Success    bool `json:"success"`
	IsFavorite bool `json:"isFavorite"`
}
