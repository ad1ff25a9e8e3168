package models

// ResultEntry is one derived result line on a student record
type ResultEntry struct {
	CompetitionID   string `json:"competitionId"`
	CompetitionName string `json:"competitionName"`
	Prize           string `json:"prize"`
	Points          int    `json:"points"`
	Reported        bool   `json:"reported"`
}

// Student represents a registered festival participant. Events, Results,
// Points and the two counters are derived from competition participation
// and are only ever written by the derivation engine.
type Student struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Team string `json:"team"`
	Year string `json:"year"`

	Events                 []string      `json:"events"`
	Results                []ResultEntry `json:"results"`
	Points                 int           `json:"points"`
	CompetitionsRegistered int           `json:"competitionsRegistered"`
	CompetitionsCompleted  int           `json:"competitionsCompleted"`
}
