package admin

type statsInput struct{}

type statsOutput struct {
	Body StatsResponse
}

type StatsResponse struct {
	Success bool  `json:"success"`
	Data    Stats `json:"data"`
}

// Stats feeds the dashboard counters.
type Stats struct {
	Cars     int `json:"cars"`
	Messages int `json:"messages"`
	NonLus   int `json:"nonLus"`
	Clients  int `json:"clients"`
}

type storeInput struct{}

type storeOutput struct {
	Body StoreResponse
}

type StoreResponse struct {
	Success  bool   `json:"success"`
	Mode     string `json:"mode" enum:"emulated,driver"`
	Previous string `json:"previous,omitempty"`
	Changed  bool   `json:"changed"`
}
