package utils

import (
	"os"
	"testing"

	"festival/config"
	"festival/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

func TestNextStudentCode(t *testing.T) {
	t.Run("empty roster starts at 001", func(t *testing.T) {
		assert.Equal(t, "RV2025001", NextStudentCode(nil))
	})

	t.Run("continues after the highest suffix", func(t *testing.T) {
		students := []models.Student{
			{Code: "RV2025003"},
			{Code: "RV2025041"},
			{Code: "RV2025007"},
		}
		assert.Equal(t, "RV2025042", NextStudentCode(students))
	})

	t.Run("ignores foreign codes", func(t *testing.T) {
		students := []models.Student{
			{Code: "RV2025002"},
			{Code: "XX9999999"},
			{Code: "RV2025abc"},
		}
		assert.Equal(t, "RV2025003", NextStudentCode(students))
	})
}

func TestAssignCompetitionCodes(t *testing.T) {
	participants := []models.Participant{
		{StudentID: "s1"}, {StudentID: "s2"}, {StudentID: "s3"}, {StudentID: "s4"},
	}

	assigned := AssignCompetitionCodes(participants)
	require.Len(t, assigned, len(participants))

	seen := map[string]bool{}
	for _, p := range assigned {
		require.Len(t, p.CompetitionCode, 1)
		assert.False(t, seen[p.CompetitionCode], "codes must be distinct")
		seen[p.CompetitionCode] = true
	}

	// Input is left untouched
	for _, p := range participants {
		assert.Empty(t, p.CompetitionCode)
	}
}

func TestAssignCompetitionCodesWrapsPastZ(t *testing.T) {
	participants := make([]models.Participant, 30)
	assigned := AssignCompetitionCodes(participants)

	seen := map[string]bool{}
	for _, p := range assigned {
		require.NotEmpty(t, p.CompetitionCode)
		assert.False(t, seen[p.CompetitionCode])
		seen[p.CompetitionCode] = true
	}
	assert.Len(t, seen, 30)
}
