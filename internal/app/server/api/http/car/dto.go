package car

import "starauto/internal/domain/car"

type listInput struct {
	Marque   string  `query:"marque"`
	Annee    int     `query:"annee"`
	MinPrice float64 `query:"minPrice" minimum:"0"`
	MaxPrice float64 `query:"maxPrice" minimum:"0"`
	Search   string  `query:"search"`
	Sort     string  `query:"sort" enum:"price-asc,price-desc,year-asc,year-desc"`
}

// query treats zero prices as absent, the way the catalog page sends them.
func (in *listInput) query() car.Query {
	q := car.Query{
		Marque: in.Marque,
		Annee:  in.Annee,
		Search: in.Search,
		Sort:   in.Sort,
	}
	if in.MinPrice > 0 {
		q.MinPrice = &in.MinPrice
	}
	if in.MaxPrice > 0 {
		q.MaxPrice = &in.MaxPrice
	}
	return q
}

type listOutput struct {
	Body CarListResponse
}

type CarListResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    []car.Car `json:"data"`
}

type idInput struct {
	ID string `path:"id"`
}

type carOutput struct {
	Body CarResponse
}

type CarResponse struct {
	Success bool    `json:"success"`
	Data    car.Car `json:"data"`
}

type CarBody struct {
	Marque        string   `json:"marque"`
	Modele        string   `json:"modele"`
	Annee         int      `json:"annee"`
	Prix          float64  `json:"prix"`
	Images        []string `json:"images,omitempty"`
	Description   string   `json:"description"`
	Kilometrage   int      `json:"kilometrage,omitempty"`
	Carburant     string   `json:"carburant,omitempty"`
	Transmission  string   `json:"transmission,omitempty"`
	Couleur       string   `json:"couleur,omitempty"`
	Disponibilite *bool    `json:"disponibilite,omitempty"`
}

func (b CarBody) input() car.Input {
	return car.Input{
		Marque:        b.Marque,
		Modele:        b.Modele,
		Annee:         b.Annee,
		Prix:          b.Prix,
		Images:        b.Images,
		Description:   b.Description,
		Kilometrage:   b.Kilometrage,
		Carburant:     b.Carburant,
		Transmission:  b.Transmission,
		Couleur:       b.Couleur,
		Disponibilite: b.Disponibilite,
	}
}

type createInput struct {
	Body CarBody
}

type CarPatchBody struct {
	Marque        *string  `json:"marque,omitempty"`
	Modele        *string  `json:"modele,omitempty"`
	Annee         *int     `json:"annee,omitempty"`
	Prix          *float64 `json:"prix,omitempty"`
	Images        []string `json:"images,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Kilometrage   *int     `json:"kilometrage,omitempty"`
	Carburant     *string  `json:"carburant,omitempty"`
	Transmission  *string  `json:"transmission,omitempty"`
	Couleur       *string  `json:"couleur,omitempty"`
	Disponibilite *bool    `json:"disponibilite,omitempty"`
}

func (b CarPatchBody) update() car.Update {
	return car.Update{
		Marque:        b.Marque,
		Modele:        b.Modele,
		Annee:         b.Annee,
		Prix:          b.Prix,
		Images:        b.Images,
		Description:   b.Description,
		Kilometrage:   b.Kilometrage,
		Carburant:     b.Carburant,
		Transmission:  b.Transmission,
		Couleur:       b.Couleur,
		Disponibilite: b.Disponibilite,
	}
}

type updateInput struct {
	ID   string `path:"id"`
	Body CarPatchBody
}

type deleteOutput struct {
	Body CarDeleteResponse
}

type CarDeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
