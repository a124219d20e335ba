package car

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

func maxYear() int {
	return time.Now().Year() + 1
}

func (in Input) validate() error {
	switch {
	case strings.TrimSpace(in.Marque) == "":
		return fmt.Errorf("%w: marque is required", ErrInvalidInput)
	case strings.TrimSpace(in.Modele) == "":
		return fmt.Errorf("%w: modele is required", ErrInvalidInput)
	case strings.TrimSpace(in.Description) == "":
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	return validateCommon(&in.Annee, &in.Prix, &in.Kilometrage, in.Carburant, in.Transmission)
}

func (u Update) validate() error {
	for field, v := range map[string]*string{"marque": u.Marque, "modele": u.Modele, "description": u.Description} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalidInput, field)
		}
	}
	var fuel, gearbox string
	if u.Carburant != nil {
		fuel = *u.Carburant
	}
	if u.Transmission != nil {
		gearbox = *u.Transmission
	}
	return validateCommon(u.Annee, u.Prix, u.Kilometrage, fuel, gearbox)
}

func validateCommon(annee *int, prix *float64, km *int, fuel, gearbox string) error {
	if annee != nil && (*annee < minYear || *annee > maxYear()) {
		return fmt.Errorf("%w: annee must be between %d and %d", ErrInvalidInput, minYear, maxYear())
	}
	if prix != nil && *prix < 0 {
		return fmt.Errorf("%w: prix cannot be negative", ErrInvalidInput)
	}
	if km != nil && *km < 0 {
		return fmt.Errorf("%w: kilometrage cannot be negative", ErrInvalidInput)
	}
	if fuel != "" && !slices.Contains(Fuels, fuel) {
		return fmt.Errorf("%w: unknown carburant %q", ErrInvalidInput, fuel)
	}
	if gearbox != "" && !slices.Contains(Gearboxes, gearbox) {
		return fmt.Errorf("%w: unknown transmission %q", ErrInvalidInput, gearbox)
	}
	return nil
}

// fields renders a new listing with defaults applied.
func (in Input) fields() map[string]any {
	images := in.Images
	if len(images) == 0 {
		images = []string{DefaultImage}
	}
	fuel := in.Carburant
	if fuel == "" {
		fuel = FuelEssence
	}
	gearbox := in.Transmission
	if gearbox == "" {
		gearbox = GearboxManual
	}
	couleur := in.Couleur
	if couleur == "" {
		couleur = DefaultCouleur
	}
	available := true
	if in.Disponibilite != nil {
		available = *in.Disponibilite
	}

	return map[string]any{
		"marque":        strings.TrimSpace(in.Marque),
		"modele":        strings.TrimSpace(in.Modele),
		"annee":         in.Annee,
		"prix":          in.Prix,
		"images":        images,
		"description":   in.Description,
		"kilometrage":   in.Kilometrage,
		"carburant":     fuel,
		"transmission":  gearbox,
		"couleur":       couleur,
		"disponibilite": available,
	}
}

func (u Update) fields() map[string]any {
	out := map[string]any{}
	setString := func(k string, v *string) {
		if v != nil {
			out[k] = strings.TrimSpace(*v)
		}
	}
	setString("marque", u.Marque)
	setString("modele", u.Modele)
	setString("carburant", u.Carburant)
	setString("transmission", u.Transmission)
	setString("couleur", u.Couleur)
	if u.Description != nil {
		out["description"] = *u.Description
	}
	if u.Annee != nil {
		out["annee"] = *u.Annee
	}
	if u.Prix != nil {
		out["prix"] = *u.Prix
	}
	if u.Kilometrage != nil {
		out["kilometrage"] = *u.Kilometrage
	}
	if u.Images != nil {
		out["images"] = u.Images
	}
	if u.Disponibilite != nil {
		out["disponibilite"] = *u.Disponibilite
	}
	return out
}
