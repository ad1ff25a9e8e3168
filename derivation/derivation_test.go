package derivation

import (
	"testing"

	"festival/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantPoints(t *testing.T) {
	tests := []struct {
		name        string
		participant models.Participant
		want        int
	}{
		{"first prize", models.Participant{Prize: "1"}, 10},
		{"second prize", models.Participant{Prize: "2"}, 7},
		{"third prize", models.Participant{Prize: "3"}, 5},
		{"reported only", models.Participant{Reported: true}, 2},
		{"registered only", models.Participant{}, 0},
		{"custom points alone", models.Participant{CustomPoints: 4}, 4},
		{"prize beats attendance", models.Participant{Prize: "1", Reported: true}, 10},
		{"prize plus custom", models.Participant{Prize: "2", CustomPoints: 3}, 10},
		{"reported plus custom", models.Participant{Reported: true, CustomPoints: 1}, 3},
		{"unknown prize falls back to attendance", models.Participant{Prize: "4", Reported: true}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParticipantPoints(tt.participant))
		})
	}
}

// A winner who also reported must never earn prize and attendance points
// at once; the prize supersedes.
func TestParticipantPointsPrizeSupersedesAttendance(t *testing.T) {
	p := models.Participant{Prize: "2", Reported: true, CustomPoints: 3}
	assert.Equal(t, 10, ParticipantPoints(p))
}

func TestRecompute(t *testing.T) {
	students := []models.Student{
		{ID: "s1", Name: "Aalia", Code: "RV2025001"},
		{ID: "s2", Name: "Bilal", Code: "RV2025002"},
		{ID: "s3", Name: "Chand", Code: "RV2025003"},
	}
	competitions := []models.Competition{
		{
			ID: "c1", Name: "Essay Writing", Status: models.StatusCompleted,
			Participants: []models.Participant{
				{StudentID: "s1", Prize: "2", Reported: true, CustomPoints: 3},
				{StudentID: "s2", Reported: true},
			},
		},
		{
			ID: "c2", Name: "Quiz", Status: models.StatusOngoing,
			Participants: []models.Participant{
				{StudentID: "s1"},
			},
		},
	}

	updated := Recompute(students, competitions)
	require.Len(t, updated, 3)

	s1 := updated[0]
	assert.Equal(t, []string{"Essay Writing", "Quiz"}, s1.Events)
	assert.Equal(t, 10, s1.Points)
	assert.Equal(t, 2, s1.CompetitionsRegistered)
	assert.Equal(t, 1, s1.CompetitionsCompleted)
	require.Len(t, s1.Results, 1)
	assert.Equal(t, "c1", s1.Results[0].CompetitionID)
	assert.Equal(t, "2", s1.Results[0].Prize)
	assert.Equal(t, 3, s1.Results[0].Points)
	assert.True(t, s1.Results[0].Reported)

	s2 := updated[1]
	assert.Equal(t, 2, s2.Points)
	assert.Equal(t, 1, s2.CompetitionsRegistered)
	require.Len(t, s2.Results, 1)
	assert.Equal(t, "", s2.Results[0].Prize)

	s3 := updated[2]
	assert.Empty(t, s3.Events)
	assert.Empty(t, s3.Results)
	assert.Zero(t, s3.Points)
	assert.Zero(t, s3.CompetitionsRegistered)
}

func TestRecomputeMatchesByCode(t *testing.T) {
	students := []models.Student{{ID: "s1", Name: "Aalia", Code: "RV2025001"}}
	competitions := []models.Competition{
		{
			ID: "c1", Name: "Painting", Status: models.StatusCompleted,
			Participants: []models.Participant{
				// Legacy records reference the student only by code
				{Code: "RV2025001", Prize: "3"},
			},
		},
	}

	updated := Recompute(students, competitions)
	require.Len(t, updated, 1)
	assert.Equal(t, 5, updated[0].Points)
}

func TestRecomputeIdempotent(t *testing.T) {
	students := []models.Student{
		// Stale derived values must be overwritten, not accumulated
		{ID: "s1", Code: "RV2025001", Points: 99, Events: []string{"ghost"}},
	}
	competitions := []models.Competition{
		{
			ID: "c1", Name: "Debate", Status: models.StatusCompleted,
			Participants: []models.Participant{{StudentID: "s1", Prize: "1"}},
		},
	}

	once := Recompute(students, competitions)
	twice := Recompute(once, competitions)
	assert.Equal(t, once, twice)
	assert.Equal(t, 10, twice[0].Points)
	assert.Equal(t, []string{"Debate"}, twice[0].Events)
}

func TestRecomputeDoesNotMutateInput(t *testing.T) {
	students := []models.Student{{ID: "s1", Code: "RV2025001"}}
	competitions := []models.Competition{
		{
			ID: "c1", Name: "Drama", Status: models.StatusCompleted,
			Participants: []models.Participant{{StudentID: "s1", Prize: "1"}},
		},
	}

	_ = Recompute(students, competitions)
	assert.Zero(t, students[0].Points)
	assert.Nil(t, students[0].Events)
}
