package catalog

import "github.com/qwicdev/backorder-analyzer/internal/model"

// defaultCategories returns the built-in category set used when no
// persisted document exists. Display strings are Dutch because that is
// what the back office reads.
func defaultCategories() map[int]*model.Category {
	return map[int]*model.Category{
		1: {
			ID:          1,
			Name:        "Bestel bij fabrikant",
			Description: "Artikel is niet meer leverbaar. Backorder wordt verwijderd en de dealer krijgt een e-mail met een link naar de fabrikant.",
			Action:      "Verwijder backorder + E-mail naar fabrikant",
			Color:       "FF6B6B",
			Items:       []string{"10701", "10705", "10708", "10709", "10710"},
		},
		2: {
			ID:          2,
			Name:        "Binnenkort leverbaar",
			Description: "Backorder blijft staan en wordt niet gemaild; het ERP mailt automatisch zodra het artikel binnen is.",
			Action:      "Behoud backorder",
			Color:       "4ECDC4",
			Items: []string{
				"10700", "10702", "10703", "10704", "10706", "10707",
				"10711", "10712", "10713", "10714", "10715",
				"10718", "10719", "10720",
			},
		},
		3: {
			ID:          3,
			Name:        "Geen voorraadvooruitzicht",
			Description: "Artikel komt niet meer of pas over zeer lange tijd. Backorder wordt verwijderd en de dealer krijgt een e-mail met een link naar een externe verkoper.",
			Action:      "Verwijder backorder + E-mail naar externe verkoper",
			Color:       "FFA500",
			Items:       []string{"10716", "10717"},
		},
	}
}

// defaultItemLinks returns the built-in link overrides for the stock
// test items.
func defaultItemLinks() map[string]map[string]string {
	return map[string]map[string]string{
		"10701": {
			model.LinkManufacturer:   "https://www.shimano.com/nl/products/cycling/",
			model.LinkExternalSeller: "https://www.bike-components.nl/nl/Shimano/",
		},
		"10705": {
			model.LinkManufacturer:   "https://www.sram.com/nl/",
			model.LinkExternalSeller: "https://www.bike-components.nl/nl/SRAM/",
		},
		"10708": {
			model.LinkManufacturer:   "https://www.campagnolo.com/nl/",
			model.LinkExternalSeller: "https://www.bike-components.nl/nl/Campagnolo/",
		},
		"10709": {
			model.LinkManufacturer:   "https://www.michelin.com/nl/",
			model.LinkExternalSeller: "https://www.bike-components.nl/nl/Michelin/",
		},
		"10710": {
			model.LinkManufacturer:   "https://www.continental-tires.com/nl/",
			model.LinkExternalSeller: "https://www.bike-components.nl/nl/Continental/",
		},
		"10716": {
			model.LinkManufacturer:   "https://www.bosch-ebike.com/nl/",
			model.LinkExternalSeller: "https://www.bike-components.nl/nl/Bosch/",
		},
		"10717": {
			model.LinkManufacturer:   "https://www.brose-ebike.com/nl/",
			model.LinkExternalSeller: "https://www.bike-components.nl/nl/Brose/",
		},
	}
}
