// Package derivation recomputes the derived student statistics from raw
// competition participation records. Recompute is pure: it never touches
// storage and running it twice over the same snapshot yields identical
// output, so the orchestrating service can rewrite student records on
// every dashboard load without drift.
package derivation

import "festival/models"

// Prize points, first match wins; a prize supersedes mere attendance
const (
	FirstPrizePoints    = 10
	SecondPrizePoints   = 7
	ThirdPrizePoints    = 5
	ParticipationPoints = 2
)

// ParticipantPoints scores one participation record. Prize rank takes
// precedence over the reported flag; the custom override is always added
// on top.
func ParticipantPoints(p models.Participant) int {
	points := 0
	switch {
	case p.Prize == "1":
		points = FirstPrizePoints
	case p.Prize == "2":
		points = SecondPrizePoints
	case p.Prize == "3":
		points = ThirdPrizePoints
	case p.Reported:
		points = ParticipationPoints
	}
	return points + p.CustomPoints
}

// Recompute scans every competition's participant list and returns a new
// student slice with the derived fields rewritten: events, results, total
// points and the registered/completed counters. Input slices are not
// modified.
func Recompute(students []models.Student, competitions []models.Competition) []models.Student {
	updated := make([]models.Student, 0, len(students))

	for _, student := range students {
		events := []string{}
		results := []models.ResultEntry{}
		totalPoints := 0
		registered := 0
		completed := 0

		for _, comp := range competitions {
			participant := comp.FindParticipant(student.ID, student.Code)
			if participant == nil {
				continue
			}

			registered++
			if comp.Status == models.StatusCompleted {
				completed++
			}
			events = append(events, comp.Name)
			totalPoints += ParticipantPoints(*participant)

			if participant.Prize != "" || participant.Reported {
				results = append(results, models.ResultEntry{
					CompetitionID:   comp.ID,
					CompetitionName: comp.Name,
					Prize:           participant.Prize,
					Points:          participant.CustomPoints,
					Reported:        participant.Reported,
				})
			}
		}

		student.Events = events
		student.Results = results
		student.Points = totalPoints
		student.CompetitionsRegistered = registered
		student.CompetitionsCompleted = completed
		updated = append(updated, student)
	}

	return updated
}
