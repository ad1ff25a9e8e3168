package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusUpcoming, StatusOngoing, true},
		{StatusOngoing, StatusCompleted, true},
		{StatusUpcoming, StatusCompleted, true},
		{StatusUpcoming, StatusUpcoming, true},
		{StatusCompleted, StatusOngoing, false},
		{StatusOngoing, StatusUpcoming, false},
		{StatusCompleted, StatusUpcoming, false},
		{"bogus", StatusOngoing, false},
		{StatusUpcoming, "bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestNormalizeFoldsLegacyResults(t *testing.T) {
	raw := `{
		"id": "c1",
		"name": "Essay Writing",
		"participants": [
			{"id": "s1", "code": "RV2025001", "name": "Aalia", "reported": true, "prize": ""},
			{"id": "s2", "code": "RV2025002", "name": "Bilal", "reported": false, "prize": ""}
		],
		"results": [
			{"code": "RV2025002", "position": 1},
			{"code": "RV2025001", "position": 3}
		]
	}`

	var c Competition
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	c.Normalize()

	assert.Nil(t, c.Results)
	assert.Equal(t, StatusUpcoming, c.Status)
	require.Len(t, c.Participants, 2)
	assert.Equal(t, "3", c.Participants[0].Prize)
	assert.Equal(t, "1", c.Participants[1].Prize)
}

func TestNormalizeKeepsExistingPrizes(t *testing.T) {
	c := Competition{
		Participants: []Participant{{StudentID: "s1", Code: "RV2025001", Prize: "2"}},
		Results:      []PositionResult{{Code: "RV2025001", Position: 1}},
	}
	c.Normalize()
	assert.Equal(t, "2", c.Participants[0].Prize, "an explicit prize wins over the legacy list")
}

func TestNormalizeIgnoresUnknownPositions(t *testing.T) {
	c := Competition{
		Participants: []Participant{{StudentID: "s1", Code: "RV2025001"}},
		Results:      []PositionResult{{Code: "RV2025001", Position: 7}},
	}
	c.Normalize()
	assert.Equal(t, "", c.Participants[0].Prize)
}

func TestFindParticipant(t *testing.T) {
	c := Competition{
		Participants: []Participant{
			{StudentID: "s1", Code: "RV2025001"},
			{Code: "RV2025002"},
		},
	}

	assert.NotNil(t, c.FindParticipant("s1", ""))
	assert.NotNil(t, c.FindParticipant("", "RV2025002"))
	assert.NotNil(t, c.FindParticipant("ghost", "RV2025001"))
	assert.Nil(t, c.FindParticipant("ghost", "RV2025099"))
	assert.Nil(t, c.FindParticipant("", ""))
}
