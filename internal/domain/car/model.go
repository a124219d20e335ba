package car

import "time"

const (
	FuelEssence    = "Essence"
	FuelDiesel     = "Diesel"
	FuelElectrique = "Électrique"
	FuelHybride    = "Hybride"
	FuelGPL        = "GPL"

	GearboxManual = "Manuelle"
	GearboxAuto   = "Automatique"

	DefaultImage   = "https://via.placeholder.com/800x600?text=No+Image"
	DefaultCouleur = "Noir"

	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortYearAsc   = "year-asc"
	SortYearDesc  = "year-desc"

	minYear = 1900
)

var (
	Fuels     = []string{FuelEssence, FuelDiesel, FuelElectrique, FuelHybride, FuelGPL}
	Gearboxes = []string{GearboxManual, GearboxAuto}
)

type Car struct {
	ID            string    `json:"id"`
	Marque        string    `json:"marque"`
	Modele        string    `json:"modele"`
	Annee         int       `json:"annee"`
	Prix          float64   `json:"prix"`
	Images        []string  `json:"images"`
	Description   string    `json:"description"`
	Kilometrage   int       `json:"kilometrage"`
	Carburant     string    `json:"carburant"`
	Transmission  string    `json:"transmission"`
	Couleur       string    `json:"couleur"`
	Disponibilite bool      `json:"disponibilite"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Input is a new listing. Zero optional fields take the catalog defaults.
type Input struct {
	Marque        string
	Modele        string
	Annee         int
	Prix          float64
	Images        []string
	Description   string
	Kilometrage   int
	Carburant     string
	Transmission  string
	Couleur       string
	Disponibilite *bool
}

// Update carries only the fields to change.
type Update struct {
	Marque        *string
	Modele        *string
	Annee         *int
	Prix          *float64
	Images        []string
	Description   *string
	Kilometrage   *int
	Carburant     *string
	Transmission  *string
	Couleur       *string
	Disponibilite *bool
}

// Query narrows and orders the catalog.
type Query struct {
	Marque   string
	Annee    int
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Sort     string
}
