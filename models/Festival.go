package models

// FestivalDocID is the fixed document id of the festival metadata singleton
const FestivalDocID = "main"

// Festival is the singleton festival metadata record
type Festival struct {
	Name        string   `json:"name"`
	Logo        string   `json:"logo"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Venue       string   `json:"venue"`
	Description string   `json:"description"`
	Theme       string   `json:"theme,omitempty"`
	Organizers  []string `json:"organizers,omitempty"`
}

// DefaultFestival returns the metadata used until an admin edits it
func DefaultFestival() Festival {
	return Festival{
		Name:        "RENDEZVOUS 2025",
		Logo:        "🎭",
		StartDate:   "2025-09-19",
		EndDate:     "2025-09-20",
		Venue:       "MARKAZ MIHRAJ MALAYIL",
		Description: "Annual Cultural and Technical Festival",
	}
}
