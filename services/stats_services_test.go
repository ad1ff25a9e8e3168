package services

import (
	"context"
	"testing"
	"time"

	"festival/models"
	"festival/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) {
	t.Helper()
	prev := storage.Store
	storage.Store = storage.NewHybrid(storage.NewMemoryRemote(), storage.NewMemoryLocal(), true)
	t.Cleanup(func() { storage.Store = prev })
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 18, DaysUntil("2025-09-19", now))
	assert.Equal(t, 0, DaysUntil("2025-08-01", now), "past dates clamp to zero")
	assert.Equal(t, 0, DaysUntil("not a date", now))
}

func TestGetDashboardStats(t *testing.T) {
	setupStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := storage.Store.AddStudent(ctx, models.Student{Name: "S"})
		require.NoError(t, err)
	}
	_, err := storage.Store.AddCompetition(ctx, models.Competition{Name: "Quiz", Category: models.CategoryAcademic})
	require.NoError(t, err)
	done, err := storage.Store.AddCompetition(ctx, models.Competition{Name: "Essay", Category: models.CategoryAcademic})
	require.NoError(t, err)
	_, err = storage.Store.UpdateCompetition(ctx, done.ID, map[string]any{"status": models.StatusCompleted})
	require.NoError(t, err)

	_, err = storage.Store.AddAnnouncement(ctx, models.Announcement{Title: "Hi", Message: "m", Type: models.AnnouncementInfo})
	require.NoError(t, err)

	stats, err := GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 2, stats.TotalCompetitions)
	assert.Equal(t, 1, stats.CompletedCompetitions)
	assert.Equal(t, 1, stats.ActiveAnnouncements)
	assert.Equal(t, 0, stats.GalleryImages)
}

func TestGetLeaderboard(t *testing.T) {
	setupStore(t)
	ctx := context.Background()

	students := []models.Student{
		{ID: "s1", Name: "Aalia", Code: "RV2025001", Points: 5},
		{ID: "s2", Name: "Bilal", Code: "RV2025002", Points: 17},
		{ID: "s3", Name: "Chand", Code: "RV2025003", Points: 5},
	}
	require.NoError(t, storage.Store.SetStudents(ctx, students))

	entries, err := GetLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Bilal", entries[0].Name)
	// Ties rank by name for a stable order
	assert.Equal(t, "Aalia", entries[1].Name)
	assert.Equal(t, "Chand", entries[2].Name)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestGetTeamLeaderboard(t *testing.T) {
	setupStore(t)
	ctx := context.Background()

	students := []models.Student{
		{ID: "s1", Name: "Aalia", Code: "RV2025001", Team: "Team A", Points: 5},
		{ID: "s2", Name: "Bilal", Code: "RV2025002", Team: "Team B", Points: 17},
		{ID: "s3", Name: "Chand", Code: "RV2025003", Team: "Team A", Points: 20},
		{ID: "s4", Name: "Dana", Code: "RV2025004", Points: 9},
	}
	require.NoError(t, storage.Store.SetStudents(ctx, students))

	standings, err := GetTeamLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, standings, 2, "students without a team are skipped")

	assert.Equal(t, "Team A", standings[0].Team)
	assert.Equal(t, 25, standings[0].TotalPoints)
	assert.Equal(t, 2, standings[0].StudentCount)
	assert.Equal(t, 2, standings[1].Rank)
}

func TestRecomputeStudentRecords(t *testing.T) {
	setupStore(t)
	ctx := context.Background()

	student, err := storage.Store.AddStudent(ctx, models.Student{Name: "Aalia", Code: "RV2025001"})
	require.NoError(t, err)

	comp, err := storage.Store.AddCompetition(ctx, models.Competition{Name: "Quiz", Category: models.CategoryAcademic})
	require.NoError(t, err)
	_, err = storage.Store.UpdateCompetition(ctx, comp.ID, map[string]any{
		"status": models.StatusCompleted,
		"participants": []models.Participant{
			{StudentID: student.ID, Code: student.Code, Prize: "1"},
		},
	})
	require.NoError(t, err)

	count, err := RecomputeStudentRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	updated, err := storage.Store.GetStudentByID(ctx, student.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 10, updated.Points)
	assert.Equal(t, []string{"Quiz"}, updated.Events)
	assert.Equal(t, 1, updated.CompetitionsCompleted)
}

func TestResetStudentData(t *testing.T) {
	setupStore(t)
	ctx := context.Background()

	student, err := storage.Store.AddStudent(ctx, models.Student{Name: "Aalia", Code: "RV2025001"})
	require.NoError(t, err)
	comp, err := storage.Store.AddCompetition(ctx, models.Competition{Name: "Quiz", Category: models.CategoryAcademic})
	require.NoError(t, err)
	_, err = storage.Store.UpdateCompetition(ctx, comp.ID, map[string]any{
		"participants": []models.Participant{{StudentID: student.ID, Code: student.Code}},
	})
	require.NoError(t, err)
	_, err = storage.Store.UpdateStudent(ctx, student.ID, map[string]any{"points": 42})
	require.NoError(t, err)

	resetStudents, resetCompetitions, err := ResetStudentData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resetStudents)
	assert.Equal(t, 1, resetCompetitions)

	cleared, err := storage.Store.GetStudentByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Zero(t, cleared.Points)
	assert.Empty(t, cleared.Events)

	emptied, err := storage.Store.GetCompetitionByID(ctx, comp.ID)
	require.NoError(t, err)
	assert.Empty(t, emptied.Participants)
}
