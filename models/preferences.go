package models

// Preferences is the structured user input describing desired cafe
// characteristics for one search. All fields are optional; the zero
// value matches every cafe.
type Preferences struct {
	Mood                string   `json:"mood,omitempty"`
	Cuisine             string   `json:"cuisine,omitempty"`
	Ambiance            string   `json:"ambiance,omitempty"`
	PriceRange          string   `json:"priceRange,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	Amenities           []string `json:"amenities,omitempty"`
	Location            string   `json:"location,omitempty"`
	Occasion            string   `json:"occasion,omitempty"`
	GroupSize           string   `json:"groupSize,omitempty"`
	TimeOfDay           string   `json:"timeOfDay,omitempty"`
}

// IsEmpty reports whether no preference field is set.
func (p Preferences) IsEmpty() bool {
	return p.Mood == "" &&
		p.Cuisine == "" &&
		p.Ambiance == "" &&
		p.PriceRange == "" &&
		len(p.DietaryRestrictions) == 0 &&
		len(p.Amenities) == 0 &&
		p.Location == "" &&
		p.Occasion == "" &&
		p.GroupSize == "" &&
		p.TimeOfDay == ""
}

// Merge overlays the non-empty fields of incoming onto p and returns the
// result. Set-valued fields replace wholesale when provided.
func (p Preferences) Merge(incoming Preferences) Preferences {
	out := p
	if incoming.Mood != "" {
		out.Mood = incoming.Mood
	}
	if incoming.Cuisine != "" {
		out.Cuisine = incoming.Cuisine
	}
	if incoming.Ambiance != "" {
		out.Ambiance = incoming.Ambiance
	}
	if incoming.PriceRange != "" {
		out.PriceRange = incoming.PriceRange
	}
	if incoming.DietaryRestrictions != nil {
		out.DietaryRestrictions = incoming.DietaryRestrictions
	}
	if incoming.Amenities != nil {
		out.Amenities = incoming.Amenities
	}
	if incoming.Location != "" {
		out.Location = incoming.Location
	}
	if incoming.Occasion != "" {
		out.Occasion = incoming.Occasion
	}
	if incoming.GroupSize != "" {
		out.GroupSize = incoming.GroupSize
	}
	if incoming.TimeOfDay != "" {
		out.TimeOfDay = incoming.TimeOfDay
	}
	return out
}
