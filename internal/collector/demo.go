package collector

import "time"

// DemoPayload builds the fixed offline payload. It bypasses the fetcher and
// the network entirely, so the tool stays runnable and testable without
// provider access.
func DemoPayload(clock Clock) Payload {
	return Payload{
		GeneratedAt: clock.Now().UTC().Format(time.RFC3339),
		Source:      "demo",
		Query:       "clearance",
		Stores:      Stores(),
		Items:       demoItems(),
	}
}

func demoItems() []Item {
	return []Item{
		{
			SKU:          "6000191234567",
			Title:        "Téléviseur TCL 55'' 4K",
			Store:        "Walmart Saint-Jérôme Supercentre",
			City:         "Saint-Jérôme",
			Price:        floatPtr(398.0),
			Was:          floatPtr(598.0),
			Pct:          intPtr(33),
			URL:          "https://www.walmart.ca/ip/6000191234567",
			Image:        "https://i5.walmartimages.ca/images/Enlarge/123/456/6000191234567.jpg",
			Availability: "IN_STOCK",
		},
		{
			SKU:          "6000209876543",
			Title:        "Compresseur Mastercraft 20V",
			Store:        "Walmart Blainville Supercentre",
			City:         "Blainville",
			Price:        floatPtr(89.0),
			Was:          floatPtr(149.0),
			Pct:          intPtr(40),
			URL:          "https://www.walmart.ca/ip/6000209876543",
			Image:        "https://i5.walmartimages.ca/images/Enlarge/987/654/6000209876543.jpg",
			Availability: "LOW_STOCK",
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
