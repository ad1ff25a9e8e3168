package services

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"festival/models"
	"festival/storage"
)

// DashboardStats is the aggregate view shown on the admin dashboard
type DashboardStats struct {
	TotalStudents         int `json:"totalStudents"`
	TotalCompetitions     int `json:"totalCompetitions"`
	CompletedCompetitions int `json:"completedCompetitions"`
	ActiveAnnouncements   int `json:"activeAnnouncements"`
	GalleryImages         int `json:"galleryImages"`
	DaysToGo              int `json:"daysToGo"`
}

// LeaderboardEntry is one ranked row of the student leaderboard
type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Team    string `json:"team"`
	Year    string `json:"year"`
	Points  int    `json:"points"`
	Results int    `json:"results"`
	Events  int    `json:"events"`
}

// TeamStanding aggregates points over every student of one team
type TeamStanding struct {
	Rank         int    `json:"rank"`
	Team         string `json:"team"`
	TotalPoints  int    `json:"totalPoints"`
	StudentCount int    `json:"studentCount"`
}

// GetDashboardStats loads the four content collections and the festival
// document concurrently and folds them into the dashboard counters
func GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var (
		wg            sync.WaitGroup
		students      []models.Student
		competitions  []models.Competition
		announcements []models.Announcement
		gallery       []models.GalleryImage
		festival      models.Festival
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		var err error
		if students, err = storage.Store.GetStudents(ctx); err != nil {
			log.Printf("Failed to load students for dashboard: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if competitions, err = storage.Store.GetCompetitions(ctx); err != nil {
			log.Printf("Failed to load competitions for dashboard: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if announcements, err = storage.Store.GetAnnouncements(ctx); err != nil {
			log.Printf("Failed to load announcements for dashboard: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if gallery, err = storage.Store.GetGallery(ctx); err != nil {
			log.Printf("Failed to load gallery for dashboard: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if festival, err = storage.Store.GetFestival(ctx); err != nil {
			log.Printf("Failed to load festival data for dashboard: %v", err)
		}
	}()
	wg.Wait()

	stats := &DashboardStats{
		TotalStudents:     len(students),
		TotalCompetitions: len(competitions),
		GalleryImages:     len(gallery),
	}
	for _, competition := range competitions {
		if competition.Status == models.StatusCompleted {
			stats.CompletedCompetitions++
		}
	}
	for _, announcement := range announcements {
		if announcement.Active {
			stats.ActiveAnnouncements++
		}
	}
	stats.DaysToGo = DaysUntil(festival.StartDate, time.Now())
	return stats, nil
}

// DaysUntil returns whole days between now and a YYYY-MM-DD start date,
// never negative. Unparseable dates count as zero.
func DaysUntil(startDate string, now time.Time) int {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0
	}
	days := int(start.Sub(now.Truncate(24*time.Hour)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// GetLeaderboard ranks every student by total points descending, ties
// broken by name for a stable order
func GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	students, err := storage.Store.GetStudents(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(students, func(i, j int) bool {
		if students[i].Points != students[j].Points {
			return students[i].Points > students[j].Points
		}
		return students[i].Name < students[j].Name
	})

	entries := make([]LeaderboardEntry, 0, len(students))
	for i, student := range students {
		entries = append(entries, LeaderboardEntry{
			Rank:    i + 1,
			ID:      student.ID,
			Name:    student.Name,
			Code:    student.Code,
			Team:    student.Team,
			Year:    student.Year,
			Points:  student.Points,
			Results: len(student.Results),
			Events:  len(student.Events),
		})
	}
	return entries, nil
}

// GetTeamLeaderboard aggregates student points per team
func GetTeamLeaderboard(ctx context.Context) ([]TeamStanding, error) {
	students, err := storage.Store.GetStudents(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*TeamStanding)
	order := []string{}
	for _, student := range students {
		if student.Team == "" {
			continue
		}
		standing, ok := totals[student.Team]
		if !ok {
			standing = &TeamStanding{Team: student.Team}
			totals[student.Team] = standing
			order = append(order, student.Team)
		}
		standing.TotalPoints += student.Points
		standing.StudentCount++
	}

	standings := make([]TeamStanding, 0, len(order))
	for _, team := range order {
		standings = append(standings, *totals[team])
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalPoints != standings[j].TotalPoints {
			return standings[i].TotalPoints > standings[j].TotalPoints
		}
		return standings[i].Team < standings[j].Team
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings, nil
}
