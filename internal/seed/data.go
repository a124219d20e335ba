package seed

import (
	"starauto/internal/domain/car"
	"starauto/internal/domain/user"
)

// Accounts created by Run. Passwords are meant to be changed after the first login.
var (
	Admin = user.RegisterInput{
		Username: "admin",
		Email:    "admin@starauto.com",
		Password: "admin123",
		Nom:      "Administrateur",
	}
	Client = user.RegisterInput{
		Username: "client",
		Email:    "client@starauto.com",
		Password: "client123",
	}
)

// Cars is the sample inventory. Prices are in dinars.
var Cars = []car.Input{
	{
		Marque: "BMW",
		Modele: "X5",
		Annee:  2023,
		Prix:   255000,
		Images: []string{
			"https://images.unsplash.com/photo-1556189250-72ba954e96b9?w=800",
			"https://images.unsplash.com/photo-1617788138017-80ad40651399?w=800",
		},
		Description:  "Le BMW X5 combine luxe et performance. Moteur 3.0L biturbo diesel de 265 ch. Intérieur cuir, navigation GPS, caméra de recul.",
		Kilometrage:  15000,
		Carburant:    car.FuelDiesel,
		Transmission: car.GearboxAuto,
		Couleur:      "Noir",
	},
	{
		Marque: "Mercedes-Benz",
		Modele: "C-Class",
		Annee:  2022,
		Prix:   153000,
		Images: []string{
			"https://images.unsplash.com/photo-1618684479807-85f8e2cf676d?w=800",
			"https://images.unsplash.com/photo-1580273916550-e323be2ae537?w=800",
		},
		Description:  "La Mercedes-Benz C-Class incarne l'élégance et la technologie. Moteur 2.0L turbo essence de 184 ch. Système MBUX, sièges chauffants, toit ouvrant panoramique.",
		Kilometrage:  25000,
		Carburant:    car.FuelEssence,
		Transmission: car.GearboxAuto,
		Couleur:      "Blanc",
	},
	{
		Marque: "Audi",
		Modele: "A4",
		Annee:  2023,
		Prix:   142800,
		Images: []string{
			"https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?w=800",
			"https://images.unsplash.com/photo-1605559911161-206f7785a233?w=800",
		},
		Description:  "L'Audi A4 berline offre un confort exceptionnel et une conduite dynamique. Moteur 2.0L TFSI 190 ch. Virtual Cockpit, navigation MMI, aide au stationnement.",
		Kilometrage:  10000,
		Carburant:    car.FuelEssence,
		Transmission: car.GearboxAuto,
		Couleur:      "Gris",
	},
	{
		Marque: "Tesla",
		Modele: "Model 3",
		Annee:  2023,
		Prix:   163200,
		Images: []string{
			"https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=800",
			"https://images.unsplash.com/photo-1532581140115-ca4d4e133c91?w=800",
		},
		Description:  "La Tesla Model 3 Long Range offre une autonomie de 602 km. 100% électrique, 351 ch. Autopilote, écran tactile 15 pouces, mises à jour à distance.",
		Kilometrage:  8000,
		Carburant:    car.FuelElectrique,
		Transmission: car.GearboxAuto,
		Couleur:      "Rouge",
	},
	{
		Marque: "Volkswagen",
		Modele: "Golf",
		Annee:  2022,
		Prix:   95200,
		Images: []string{
			"https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=800",
			"https://images.unsplash.com/photo-1541899481282-d53bffe3c35d?w=800",
		},
		Description:  "La Volkswagen Golf 8 est un concentré de technologie. Moteur 1.5L TSI 130 ch. Écran digital 10 pouces, assistants de conduite, connectivité smartphone.",
		Kilometrage:  20000,
		Carburant:    car.FuelEssence,
		Transmission: car.GearboxManual,
		Couleur:      "Bleu",
	},
	{
		Marque: "Peugeot",
		Modele: "3008",
		Annee:  2023,
		Prix:   119000,
		Images: []string{
			"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800",
			"https://images.unsplash.com/photo-1503376763036-066120622c74?w=800",
		},
		Description:  "Le Peugeot 3008 Allure offre un style unique. Moteur 1.2L PureTech 130 ch. i-Cockpit 12.3 pouces, navigation 3D, aide au maintien de voie.",
		Kilometrage:  12000,
		Carburant:    car.FuelEssence,
		Transmission: car.GearboxAuto,
		Couleur:      "Blanc",
	},
}
