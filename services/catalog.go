package services

// Static site catalog. The marketing pages and the booking forms read the
// same data so a package renamed here renames everywhere.

type Tour struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Rating       float64  `json:"rating"`
	Tags         []string `json:"tags"`
	Availability string   `json:"availability"`
}

type Package struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Duration   string   `json:"duration"`
	Rating     float64  `json:"rating"`
	Tag        string   `json:"tag"`
	Highlights []string `json:"highlights"`
}

var tours = []Tour{
	{
		ID:           "1",
		Name:         "Royal Bengal Tiger Safari",
		Country:      "Sundarbans, India",
		Rating:       4.9,
		Tags:         []string{"Best Seller"},
		Availability: "Private Boat Only",
	},
	{
		ID:           "2",
		Name:         "Mangrove Luxury Stay",
		Country:      "Sundarbans, India",
		Rating:       5.0,
		Tags:         []string{"Limited Offer"},
		Availability: "Boutique Resort",
	},
	{
		ID:           "3",
		Name:         "Wilderness Photography Tour",
		Country:      "Sundarbans, India",
		Rating:       4.8,
		Tags:         []string{"Trending"},
		Availability: "Guided Experts",
	},
}

var packages = []Package{
	{
		ID:         "pkg-1",
		Name:       "Day Tours: Nature Express",
		Duration:   "6:00 AM - 6:00 PM",
		Rating:     4.7,
		Tag:        "Popular",
		Highlights: []string{"Sajnekhali Watch Tower", "Mangrove Interpretation Centre", "Breakfast & Lunch on Boat"},
	},
	{
		ID:         "pkg-2",
		Name:       "1 Night 2 Days Expedition",
		Duration:   "Overnight Adventure",
		Rating:     4.9,
		Tag:        "Best Seller",
		Highlights: []string{"Sudhanyakhali Tiger Reserve", "Dobanki Canopy Walk", "Traditional Village Experience"},
	},
	{
		ID:         "pkg-3",
		Name:       "2 Night 3 Days Immersion",
		Duration:   "The Full Experience",
		Rating:     5.0,
		Tag:        "Elite Choice",
		Highlights: []string{"Deep Jungle Navigation", "Evening Cultural Performance"},
	},
	{
		ID:         "pkg-6",
		Name:       "Customized Tour Packages",
		Duration:   "Flexible Duration",
		Rating:     4.9,
		Tag:        "Tailor Made",
		Highlights: []string{"Exclusive Private Boat", "Custom Itinerary Design"},
	},
}

func Tours() []Tour {
	return tours
}

func Packages() []Package {
	return packages
}

// FindTour looks a tour up by id.
func FindTour(id string) (Tour, bool) {
	for _, t := range tours {
		if t.ID == id {
			return t, true
		}
	}
	return Tour{}, false
}
