// Package catalog holds the built-in Moradabad cafe dataset used to seed
// an empty store.
package catalog

import "caffind-server/models/cafe"

// Seed returns a fresh copy of the built-in catalog. Callers receive
// their own slice and records, so nothing here is ever shared or
// mutated across requests.
func Seed() []cafe.Cafe {
	cafes := make([]cafe.Cafe, len(seedCafes))
	copy(cafes, seedCafes)
	return cafes
}

var seedCafes = []cafe.Cafe{
	{
		ID:      "1",
		Name:    "Town Hall Cafe",
		Address: "Town Hall, Moradabad",
		Location: cafe.Location{
			Lat: 28.8430, Lng: 78.7680,
			Address: "Town Hall, Moradabad, Uttar Pradesh",
		},
		Description:    "Central cafe located at the heart of Moradabad. Known for its spacious seating and variety of beverages. Perfect for meetings and casual hangouts.",
		Rating:         4.3,
		ReviewCount:    420,
		Cuisine:        "Continental",
		PriceRange:     "Moderate",
		PriceLevel:     2,
		Ambiance:       "Casual",
		OpeningHours:   "8:00 AM - 10:00 PM",
		Phone:          "+91 591 245 1111",
		Amenities:      []string{"wifi", "parking", "outdoor seating"},
		DietaryOptions: []string{"vegetarian", "vegan"},
		ImageURL:       "https://images.unsplash.com/photo-1501339847302-ac426a14a5e9?w=800",
	},
	{
		ID:      "2",
		Name:    "Budh Bazaar Coffee Corner",
		Address: "Budh Bazaar, Moradabad",
		Location: cafe.Location{
			Lat: 28.8390, Lng: 78.7720,
			Address: "Budh Bazaar, Moradabad, Uttar Pradesh",
		},
		Description:    "Traditional cafe in the bustling Budh Bazaar area. Famous for its authentic Indian snacks and chai. Popular among locals for its affordable prices.",
		Rating:         4.5,
		ReviewCount:    380,
		Cuisine:        "Indian",
		PriceRange:     "Budget",
		PriceLevel:     1,
		Ambiance:       "Casual",
		OpeningHours:   "7:00 AM - 9:00 PM",
		Phone:          "+91 591 245 2222",
		Amenities:      []string{"wifi", "parking"},
		DietaryOptions: []string{"vegetarian"},
		ImageURL:       "https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=800",
	},
	{
		ID:      "3",
		Name:    "MDA Premium Lounge",
		Address: "MDA, Moradabad",
		Location: cafe.Location{
			Lat: 28.8450, Lng: 78.7700,
			Address: "MDA, Moradabad, Uttar Pradesh",
		},
		Description:    "Upscale lounge with premium coffee and gourmet snacks. Features elegant interiors and a quiet atmosphere. Perfect for business meetings and special occasions.",
		Rating:         4.6,
		ReviewCount:    290,
		Cuisine:        "Continental",
		PriceRange:     "Upscale",
		PriceLevel:     3,
		Ambiance:       "Upscale",
		OpeningHours:   "9:00 AM - 11:00 PM",
		Phone:          "+91 591 245 3333",
		Amenities:      []string{"wifi", "parking", "outdoor seating", "live music"},
		DietaryOptions: []string{"vegetarian", "vegan"},
		ImageURL:       "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=800",
	},
	{
		ID:      "4",
		Name:    "Civil Lines Community Cafe",
		Address: "Civil Lines, Moradabad",
		Location: cafe.Location{
			Lat: 28.8389, Lng: 78.7765,
			Address: "Civil Lines, Moradabad, Uttar Pradesh",
		},
		Description:    "Popular community cafe known for its friendly atmosphere and diverse menu. Great for casual meetings and group gatherings. Features both Indian and continental cuisine.",
		Rating:         4.4,
		ReviewCount:    450,
		Cuisine:        "Indian",
		PriceRange:     "Moderate",
		PriceLevel:     2,
		Ambiance:       "Social",
		OpeningHours:   "7:30 AM - 9:30 PM",
		Phone:          "+91 591 245 4444",
		Amenities:      []string{"wifi", "parking", "outdoor seating"},
		DietaryOptions: []string{"vegetarian", "halal"},
		ImageURL:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
	},
	{
		ID:      "5",
		Name:    "Budhi Vihar Heritage Cafe",
		Address: "Budhi Vihar, Moradabad",
		Location: cafe.Location{
			Lat: 28.8350, Lng: 78.7700,
			Address: "Budhi Vihar, Moradabad, Uttar Pradesh",
		},
		Description:    "Heritage cafe with traditional decor and authentic local cuisine. Known for its peaceful environment and excellent service. Perfect for quiet conversations and reading.",
		Rating:         4.2,
		ReviewCount:    310,
		Cuisine:        "Indian",
		PriceRange:     "Moderate",
		PriceLevel:     2,
		Ambiance:       "Quiet",
		OpeningHours:   "8:00 AM - 8:00 PM",
		Phone:          "+91 591 245 5555",
		Amenities:      []string{"wifi", "outdoor seating", "pet friendly"},
		DietaryOptions: []string{"vegetarian", "gluten-free"},
		ImageURL:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800",
	},
	{
		ID:      "6",
		Name:    "Delhi Road Express",
		Address: "Delhi Road, Moradabad",
		Location: cafe.Location{
			Lat: 28.8410, Lng: 78.7650,
			Address: "Delhi Road, Moradabad, Uttar Pradesh",
		},
		Description:    "Modern cafe on the busy Delhi Road with quick service and takeaway options. Perfect for travelers and busy professionals.",
		Rating:         4.1,
		ReviewCount:    270,
		Cuisine:        "Continental",
		PriceRange:     "Budget",
		PriceLevel:     1,
		Ambiance:       "Quick Service",
		OpeningHours:   "6:00 AM - 10:00 PM",
		Phone:          "+91 591 245 6666",
		Amenities:      []string{"wifi", "parking", "drive-through"},
		DietaryOptions: []string{"vegetarian", "vegan"},
		ImageURL:       "https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=800",
	},
	{
		ID:      "21",
		Name:    "Coffee House Moradabad",
		Address: "Civil Lines, Moradabad",
		Location: cafe.Location{
			Lat: 28.8389, Lng: 78.7765,
			Address: "Civil Lines, Moradabad, Uttar Pradesh",
		},
		Description:    "Popular local cafe known for its authentic Indian filter coffee and snacks. Cozy atmosphere perfect for casual meetings and conversations.",
		Rating:         4.3,
		ReviewCount:    450,
		Cuisine:        "Indian",
		PriceRange:     "Budget",
		PriceLevel:     1,
		Ambiance:       "Casual",
		OpeningHours:   "7:00 AM - 9:00 PM",
		Phone:          "+91 591 245 6789",
		Amenities:      []string{"wifi", "parking"},
		DietaryOptions: []string{"vegetarian"},
		ImageURL:       "https://images.unsplash.com/photo-1501339847302-ac426a14a5e9?w=800",
	},
	{
		ID:      "22",
		Name:    "The Urban Brew",
		Address: "Mall Road, Moradabad",
		Location: cafe.Location{
			Lat: 28.8421, Lng: 78.7689,
			Address: "Mall Road, Moradabad, Uttar Pradesh",
		},
		Description:    "Modern cafe with a blend of international and local flavors. Known for their specialty coffee and artisanal pastries. Great for work sessions with reliable WiFi.",
		Rating:         4.5,
		ReviewCount:    320,
		Cuisine:        "Continental",
		PriceRange:     "Moderate",
		PriceLevel:     2,
		Ambiance:       "Productive",
		OpeningHours:   "9:00 AM - 10:00 PM",
		Phone:          "+91 591 256 1234",
		Amenities:      []string{"wifi", "parking", "outdoor seating"},
		DietaryOptions: []string{"vegetarian", "vegan"},
		ImageURL:       "https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=800",
	},
	{
		ID:      "23",
		Name:    "Green Leaf Café",
		Address: "Sadar Bazaar, Moradabad",
		Location: cafe.Location{
			Lat: 28.8356, Lng: 78.7723,
			Address: "Sadar Bazaar, Moradabad, Uttar Pradesh",
		},
		Description:    "Eco-friendly cafe with organic menu options. Features fresh, locally-sourced ingredients and a peaceful garden setting.",
		Rating:         4.4,
		ReviewCount:    280,
		Cuisine:        "Continental",
		PriceRange:     "Moderate",
		PriceLevel:     2,
		Ambiance:       "Quiet",
		OpeningHours:   "8:00 AM - 8:00 PM",
		Phone:          "+91 591 234 5678",
		Amenities:      []string{"wifi", "outdoor seating", "pet friendly"},
		DietaryOptions: []string{"vegetarian", "vegan", "gluten-free"},
		ImageURL:       "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=800",
	},
	{
		ID:      "24",
		Name:    "Royal Spice",
		Address: "Jahangirabad, Moradabad",
		Location: cafe.Location{
			Lat: 28.8512, Lng: 78.7834,
			Address: "Jahangirabad, Moradabad, Uttar Pradesh",
		},
		Description:    "Upscale restaurant offering a royal dining experience with traditional Indian cuisine. Known for their elaborate thali and Mughlai dishes.",
		Rating:         4.6,
		ReviewCount:    520,
		Cuisine:        "Indian",
		PriceRange:     "Upscale",
		PriceLevel:     3,
		Ambiance:       "Upscale",
		OpeningHours:   "11:00 AM - 11:00 PM",
		Phone:          "+91 591 267 8901",
		Website:        "https://royalspicemoradabad.com",
		Amenities:      []string{"parking", "live music", "wheelchair accessible"},
		DietaryOptions: []string{"vegetarian", "halal"},
		ImageURL:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
	},
	{
		ID:      "25",
		Name:    "Sunset Lounge",
		Address: "Rajput Ganj, Moradabad",
		Location: cafe.Location{
			Lat: 28.8298, Lng: 78.7654,
			Address: "Rajput Ganj, Moradabad, Uttar Pradesh",
		},
		Description:    "Rooftop cafe with stunning views of the city skyline. Perfect for romantic dinners and evening hangouts.",
		Rating:         4.2,
		ReviewCount:    380,
		Cuisine:        "Mediterranean",
		PriceRange:     "Moderate",
		PriceLevel:     2,
		Ambiance:       "Romantic",
		OpeningHours:   "5:00 PM - 12:00 AM",
		Phone:          "+91 591 278 4321",
		Amenities:      []string{"outdoor seating", "live music", "parking"},
		DietaryOptions: []string{"vegetarian", "vegan"},
		ImageURL:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800",
	},
	{
		ID:      "26",
		Name:    "Brew & Bean",
		Address: "Katra, Moradabad",
		Location: cafe.Location{
			Lat: 28.8456, Lng: 78.7712,
			Address: "Katra, Moradabad, Uttar Pradesh",
		},
		Description:    "Specialty coffee shop with artisanal brewing methods. Known for their single-origin beans and latte art. Books and board games available.",
		Rating:         4.4,
		ReviewCount:    295,
		Cuisine:        "Cafe",
		PriceRange:     "Moderate",
		PriceLevel:     2,
		Ambiance:       "Cozy",
		OpeningHours:   "8:00 AM - 9:00 PM",
		Phone:          "+91 591 245 1122",
		Amenities:      []string{"wifi", "books", "board games"},
		DietaryOptions: []string{"vegetarian", "vegan", "gluten-free"},
		ImageURL:       "https://images.unsplash.com/photo-1554115261-2bed223582a0?w=800",
	},
	{
		ID:      "27",
		Name:    "Chai Point Express",
		Address: "Near Railway Station, Moradabad",
		Location: cafe.Location{
			Lat: 28.8398, Lng: 78.7821,
			Address: "Near Railway Station, Moradabad, Uttar Pradesh",
		},
		Description:    "Quick-service chai and snacks outlet. Famous for their masala chai and quick bites. Perfect for travelers and those in a hurry.",
		Rating:         4.1,
		ReviewCount:    420,
		Cuisine:        "Indian",
		PriceRange:     "Budget",
		PriceLevel:     1,
		Ambiance:       "Quick-service",
		OpeningHours:   "6:00 AM - 10:00 PM",
		Phone:          "+91 591 234 3344",
		Amenities:      []string{"takeaway", "delivery"},
		DietaryOptions: []string{"vegetarian"},
		ImageURL:       "https://images.unsplash.com/photo-1573496130407-57329f01f045?w=800",
	},
	{
		ID:      "28",
		Name:    "The Garden Terrace",
		Address: "Sector 11, Moradabad",
		Location: cafe.Location{
			Lat: 28.8276, Lng: 78.7789,
			Address: "Sector 11, Moradabad, Uttar Pradesh",
		},
		Description:    "Beautiful garden cafe with outdoor seating and fresh air. Offers a variety of teas, coffees, and light meals. Perfect for weekend brunches and family outings.",
		Rating:         4.5,
		ReviewCount:    350,
		Cuisine:        "Continental",
		PriceRange:     "Moderate",
		PriceLevel:     2,
		Ambiance:       "Relaxed",
		OpeningHours:   "9:00 AM - 8:00 PM",
		Phone:          "+91 591 256 5566",
		Amenities:      []string{"outdoor seating", "garden", "kids friendly", "parking"},
		DietaryOptions: []string{"vegetarian", "vegan"},
		ImageURL:       "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=800",
	},
	{
		ID:      "29",
		Name:    "Midnight Munchies",
		Address: "Old Delhi Road, Moradabad",
		Location: cafe.Location{
			Lat: 28.8489, Lng: 78.7698,
			Address: "Old Delhi Road, Moradabad, Uttar Pradesh",
		},
		Description:    "24-hour cafe serving late-night snacks and beverages. Popular among night owls and shift workers.",
		Rating:         4.0,
		ReviewCount:    310,
		Cuisine:        "Continental",
		PriceRange:     "Budget",
		PriceLevel:     1,
		Ambiance:       "Casual",
		OpeningHours:   "24 hours",
		Phone:          "+91 591 278 7788",
		Amenities:      []string{"24 hours", "delivery", "wifi"},
		DietaryOptions: []string{"vegetarian"},
		ImageURL:       "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=800",
	},
	{
		ID:      "30",
		Name:    "Artisan Bakers",
		Address: "Meerut Road, Moradabad",
		Location: cafe.Location{
			Lat: 28.8321, Lng: 78.7543,
			Address: "Meerut Road, Moradabad, Uttar Pradesh",
		},
		Description:    "Premium bakery and cafe specializing in artisanal breads and pastries. Known for their sourdough bread and French pastries.",
		Rating:         4.6,
		ReviewCount:    275,
		Cuisine:        "Bakery",
		PriceRange:     "Moderate",
		PriceLevel:     2,
		Ambiance:       "Elegant",
		OpeningHours:   "7:00 AM - 7:00 PM",
		Phone:          "+91 591 290 9900",
		Amenities:      []string{"bakery", "pastry counter", "takeaway"},
		DietaryOptions: []string{"vegetarian", "vegan options"},
		ImageURL:       "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=800",
	},
}
