package storage

import (
	"context"
	"encoding/json"
	"testing"

	"festival/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAdmin(t *testing.T) {
	ctx := context.Background()
	h, _, local := newTestHybrid(false)

	require.NoError(t, local.Upsert(ctx, CacheKey(CollectionAdmins),
		json.RawMessage(`{"id":"a1","username":"admin","password":"admin123","role":"super_admin"}`)))

	t.Run("matching credentials", func(t *testing.T) {
		admin, err := h.ValidateAdmin(ctx, "admin", "admin123")
		require.NoError(t, err)
		require.NotNil(t, admin)
		assert.Equal(t, "super_admin", admin.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		admin, err := h.ValidateAdmin(ctx, "admin", "nope")
		require.NoError(t, err)
		assert.Nil(t, admin)
	})

	t.Run("unknown username", func(t *testing.T) {
		admin, err := h.ValidateAdmin(ctx, "ghost", "admin123")
		require.NoError(t, err)
		assert.Nil(t, admin)
	})
}

func TestGetFestivalDefaults(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newTestHybrid(false)

	festival, err := h.GetFestival(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RENDEZVOUS 2025", festival.Name)
	assert.Equal(t, "2025-09-19", festival.StartDate)
}

func TestSetFestivalUsesSingletonID(t *testing.T) {
	ctx := context.Background()
	h, _, local := newTestHybrid(false)

	require.NoError(t, h.SetFestival(ctx, models.Festival{Name: "First"}))
	require.NoError(t, h.SetFestival(ctx, models.Festival{Name: "Second"}))

	records, err := local.Get(ctx, CacheKey(CollectionFestivalData))
	require.NoError(t, err)
	require.Len(t, records, 1, "the festival document is a singleton")
	assert.Equal(t, models.FestivalDocID, RecordID(records[0]))

	festival, err := h.GetFestival(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", festival.Name)
}

func TestGetCompetitionsNormalizesLegacyDocuments(t *testing.T) {
	ctx := context.Background()
	h, _, local := newTestHybrid(false)

	legacy := `{
		"id": "c1",
		"name": "Essay Writing",
		"participants": [{"id":"s1","code":"RV2025001","name":"Aalia","reported":false,"prize":""}],
		"results": [{"code":"RV2025001","position":2}]
	}`
	require.NoError(t, local.Upsert(ctx, CacheKey(CollectionCompetitions), json.RawMessage(legacy)))

	competitions, err := h.GetCompetitions(ctx)
	require.NoError(t, err)
	require.Len(t, competitions, 1)
	assert.Nil(t, competitions[0].Results)
	assert.Equal(t, "2", competitions[0].Participants[0].Prize)
	assert.Equal(t, models.StatusUpcoming, competitions[0].Status)
}

func TestGetStudentByCode(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newTestHybrid(true)

	_, err := h.AddStudent(ctx, models.Student{Name: "Aalia", Code: "RV2025001"})
	require.NoError(t, err)

	found, err := h.GetStudentByCode(ctx, "RV2025001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Aalia", found.Name)

	missing, err := h.GetStudentByCode(ctx, "RV2025999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAddAnnouncementActivates(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newTestHybrid(true)

	created, err := h.AddAnnouncement(ctx, models.Announcement{Title: "Hi", Message: "m", Type: models.AnnouncementInfo})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.NotEmpty(t, created.CreatedAt)
	assert.NotEmpty(t, created.ID)
}
