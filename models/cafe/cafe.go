package cafe

// Location holds the structured coordinates of a cafe plus a formatted
// address string used for free-text location matching.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Cafe is a single catalog record. IsOpen is derived from OpeningHours
// at read time and is never authoritative in the store.
type Cafe struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	Location       Location `json:"location"`
	Description    string   `json:"description,omitempty"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	Cuisine        string   `json:"cuisine,omitempty"`
	PriceRange     string   `json:"priceRange,omitempty"`
	PriceLevel     int      `json:"priceLevel,omitempty"`
	Ambiance       string   `json:"ambiance,omitempty"`
	OpeningHours   string   `json:"openingHours,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Website        string   `json:"website,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
	DietaryOptions []string `json:"dietaryOptions,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	IsOpen         bool     `json:"isOpen"`
}
