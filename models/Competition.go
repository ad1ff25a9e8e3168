package models

// Competition status values. Transitions are monotonic:
// upcoming -> ongoing -> completed, never backwards.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Competition categories
const (
	CategoryTechnical = "Technical"
	CategoryCultural  = "Cultural"
	CategoryAcademic  = "Academic"
	CategoryCreative  = "Creative"
	CategorySports    = "Sports"
)

// Participant is a student's registration record embedded in a competition.
// CompetitionCode is the single-letter code assigned for anonymous judging.
// Prize is one of "", "1", "2" or "3".
type Participant struct {
	StudentID       string `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	CompetitionCode string `json:"competitionCode,omitempty"`
	Reported        bool   `json:"reported"`
	Prize           string `json:"prize"`
	CustomPoints    int    `json:"customPoints,omitempty"`
}

// PositionResult is the legacy position-ranked result entry. It only
// survives decoding; Normalize folds it into participant prizes.
type PositionResult struct {
	StudentID string `json:"id,omitempty"`
	Code      string `json:"code"`
	Name      string `json:"name,omitempty"`
	Position  int    `json:"position"`
}

// Competition represents a festival event with its embedded participants
type Competition struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	Venue           string           `json:"venue"`
	MaxParticipants int              `json:"maxParticipants,omitempty"`
	Status          string           `json:"status"`
	Participants    []Participant    `json:"participants"`
	Results         []PositionResult `json:"results,omitempty"`
}

var statusRank = map[string]int{
	StatusUpcoming:  0,
	StatusOngoing:   1,
	StatusCompleted: 2,
}

// ValidStatus reports whether s is a known competition status
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether a status change respects the monotonic
// upcoming -> ongoing -> completed ordering. Staying put is allowed.
func CanTransition(from, to string) bool {
	fromRank, okFrom := statusRank[from]
	toRank, okTo := statusRank[to]
	return okFrom && okTo && toRank >= fromRank
}

// ValidCategory reports whether c is one of the closed category set
func ValidCategory(c string) bool {
	switch c {
	case CategoryTechnical, CategoryCultural, CategoryAcademic, CategoryCreative, CategorySports:
		return true
	}
	return false
}

// Normalize converts a decoded competition to the canonical shape: legacy
// position-ranked results become participant prizes (1st/2nd/3rd map to
// prize "1"/"2"/"3") and the legacy list is dropped. Participants that
// already carry a prize keep it.
func (c *Competition) Normalize() {
	if c.Status == "" {
		c.Status = StatusUpcoming
	}
	if c.Participants == nil {
		c.Participants = []Participant{}
	}
	for _, r := range c.Results {
		if r.Position < 1 || r.Position > 3 {
			continue
		}
		for i := range c.Participants {
			p := &c.Participants[i]
			if p.Prize != "" {
				continue
			}
			if (r.Code != "" && p.Code == r.Code) || (r.StudentID != "" && p.StudentID == r.StudentID) {
				p.Prize = prizeForPosition(r.Position)
				break
			}
		}
	}
	c.Results = nil
}

func prizeForPosition(position int) string {
	switch position {
	case 1:
		return "1"
	case 2:
		return "2"
	case 3:
		return "3"
	}
	return ""
}

// FindParticipant returns the participant matching a student's internal id
// or code, or nil when the student is not registered
func (c *Competition) FindParticipant(studentID, code string) *Participant {
	for i := range c.Participants {
		p := &c.Participants[i]
		if (studentID != "" && p.StudentID == studentID) || (code != "" && p.Code == code) {
			return p
		}
	}
	return nil
}
