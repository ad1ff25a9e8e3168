package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"festival/config"
	"festival/models"
)

var teamAStudents = []string{
	"ADIL MINHAJ", "ASHIQUE", "UNAIS", "AFEEF", "SAHAD", "HASHIM", "MUSTHAFA",
	"SINAN", "HADI", "MUHAMMED JUBAIR", "MUBARAK", "SHAHEEM M", "SANAD MUHAMMED",
	"SHAMIL", "SABITH", "RAFHAN", "UMER", "ANAS", "ANAS MUZAMMIL",
	"NAHYAN", "ADNAN",
}

var teamBStudents = []string{
	"HATHIB", "JINSHID", "MIDLAJ", "IBRAHIM", "ADHIL KP", "SHAFI", "SALMAN",
	"NIHAL", "RUFAID", "AZHIM", "ABSHIR", "HALEEM", "FAYIZ", "BASITH",
	"KHALEEL", "ANSHID", "MUBASHIR", "ADHIL CP", "ABDUL HADI", "HASBIN",
	"YASEEN", "SHAHEEM K",
}

// DefaultStudents builds the initial roster, codes assigned sequentially
// across Team A then Team B
func DefaultStudents() []models.Student {
	students := make([]models.Student, 0, len(teamAStudents)+len(teamBStudents))
	counter := 1
	for _, name := range teamAStudents {
		students = append(students, defaultStudent(name, "Team A", counter))
		counter++
	}
	for _, name := range teamBStudents {
		students = append(students, defaultStudent(name, "Team B", counter))
		counter++
	}
	return students
}

func defaultStudent(name, team string, counter int) models.Student {
	return models.Student{
		ID:      fmt.Sprintf("student_%s%03d", config.StudentCodePrefix, counter),
		Name:    name,
		Code:    fmt.Sprintf("%s%03d", config.StudentCodePrefix, counter),
		Team:    team,
		Year:    "1st",
		Events:  []string{},
		Results: []models.ResultEntry{},
	}
}

func defaultCompetitions() []models.Competition {
	return []models.Competition{
		{
			Name: "Coding Challenge", Description: "Competitive programming contest",
			Category: models.CategoryTechnical, Date: "2025-09-19", Time: "10:00 AM",
			Venue: "Computer Lab 1", MaxParticipants: 50, Status: models.StatusUpcoming,
		},
		{
			Name: "Web Design Contest", Description: "Create stunning web interfaces",
			Category: models.CategoryTechnical, Date: "2025-09-19", Time: "02:00 PM",
			Venue: "Computer Lab 2", MaxParticipants: 30, Status: models.StatusUpcoming,
		},
		{
			Name: "Dance Battle", Description: "Showcase your dance moves",
			Category: models.CategoryCultural, Date: "2025-09-20", Time: "06:00 PM",
			Venue: "Main Auditorium", MaxParticipants: 100, Status: models.StatusUpcoming,
		},
		{
			Name: "Quiz Championship", Description: "Test your general knowledge",
			Category: models.CategoryAcademic, Date: "2025-09-20", Time: "11:00 AM",
			Venue: "Seminar Hall", MaxParticipants: 60, Status: models.StatusUpcoming,
		},
		{
			Name: "Photography Contest", Description: "Capture the perfect moment",
			Category: models.CategoryCreative, Date: "2025-09-20", Time: "09:00 AM",
			Venue: "Campus Grounds", MaxParticipants: 40, Status: models.StatusUpcoming,
		},
	}
}

// SeedLocalDefaults fills every empty local cache key with the initial
// portal data: admin accounts, festival metadata, the student roster,
// starter competitions and announcements. Populated keys are left alone.
func SeedLocalDefaults(ctx context.Context, local LocalStore) error {
	if err := seedCollection(ctx, local, KeyAdmins, func() ([]any, error) {
		return []any{
			models.Admin{ID: "admin_1", Username: "admin", Password: "admin123"},
			models.Admin{ID: "admin_2", Username: "festival", Password: "festival2024"},
		}, nil
	}); err != nil {
		return err
	}

	if err := seedCollection(ctx, local, KeyFestivalData, func() ([]any, error) {
		f := models.DefaultFestival()
		data, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		return []any{json.RawMessage(WithID(data, models.FestivalDocID))}, nil
	}); err != nil {
		return err
	}

	if err := seedCollection(ctx, local, KeyStudents, func() ([]any, error) {
		students := DefaultStudents()
		out := make([]any, 0, len(students))
		for _, s := range students {
			out = append(out, s)
		}
		return out, nil
	}); err != nil {
		return err
	}

	if err := seedCollection(ctx, local, KeyCompetitions, func() ([]any, error) {
		competitions := defaultCompetitions()
		out := make([]any, 0, len(competitions))
		for i, c := range competitions {
			c.ID = fmt.Sprintf("comp_%d", i+1)
			c.Participants = []models.Participant{}
			out = append(out, c)
		}
		return out, nil
	}); err != nil {
		return err
	}

	return seedCollection(ctx, local, KeyAnnouncements, func() ([]any, error) {
		now := time.Now().Format(time.RFC3339)
		return []any{
			models.Announcement{
				ID: "ann_1", Title: "Registration Open", Type: models.AnnouncementInfo,
				Message: "Registration for all competitions is now open!",
				Active:  true, CreatedAt: now,
			},
			models.Announcement{
				ID: "ann_2", Title: "Venue Update", Type: models.AnnouncementWarning,
				Message: "Dance Battle venue has been changed to Main Auditorium.",
				Active:  true, CreatedAt: now,
			},
		}, nil
	})
}

func seedCollection(ctx context.Context, local LocalStore, key string, build func() ([]any, error)) error {
	existing, err := local.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check cache key %s: %w", key, err)
	}
	if len(existing) > 0 {
		return nil
	}

	items, err := build()
	if err != nil {
		return err
	}
	records := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to encode seed record for %s: %w", key, err)
		}
		records = append(records, data)
	}
	if err := local.Set(ctx, key, records); err != nil {
		return err
	}
	log.Printf("Seeded %s with %d default records", key, len(records))
	return nil
}
