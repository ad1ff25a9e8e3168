package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"festival/models"
	"festival/realtime"
)

// Typed accessors over the raw hybrid operations. These are the only
// surface the handlers use; decoding normalizes legacy document shapes so
// callers never see schema variants.

// GetStudents returns every student record
func (h *Hybrid) GetStudents(ctx context.Context) ([]models.Student, error) {
	records, err := h.GetAllRaw(ctx, CollectionStudents)
	if err != nil {
		return nil, err
	}
	students := make([]models.Student, 0, len(records))
	for _, record := range records {
		var s models.Student
		if err := json.Unmarshal(record, &s); err != nil {
			log.Printf("Skipping malformed student record: %v", err)
			continue
		}
		students = append(students, s)
	}
	return students, nil
}

// GetStudentByID returns nil when no student matches
func (h *Hybrid) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	record, err := h.GetByIDRaw(ctx, CollectionStudents, id)
	if err != nil || record == nil {
		return nil, err
	}
	var s models.Student
	if err := json.Unmarshal(record, &s); err != nil {
		return nil, fmt.Errorf("malformed student record %s: %w", id, err)
	}
	return &s, nil
}

// GetStudentByCode looks a student up by the public code; nil when absent
func (h *Hybrid) GetStudentByCode(ctx context.Context, code string) (*models.Student, error) {
	students, err := h.GetStudents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].Code == code {
			return &students[i], nil
		}
	}
	return nil, nil
}

func (h *Hybrid) AddStudent(ctx context.Context, s models.Student) (models.Student, error) {
	if s.Events == nil {
		s.Events = []string{}
	}
	if s.Results == nil {
		s.Results = []models.ResultEntry{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return models.Student{}, err
	}
	record, err := h.CreateRaw(ctx, CollectionStudents, data)
	if err != nil {
		return models.Student{}, err
	}
	var created models.Student
	if err := json.Unmarshal(record, &created); err != nil {
		return models.Student{}, err
	}
	return created, nil
}

// UpdateStudent merges a partial update into a student record
func (h *Hybrid) UpdateStudent(ctx context.Context, id string, partial any) (*models.Student, error) {
	data, err := json.Marshal(partial)
	if err != nil {
		return nil, err
	}
	record, err := h.UpdateRaw(ctx, CollectionStudents, id, data)
	if err != nil {
		return nil, err
	}
	var s models.Student
	if err := json.Unmarshal(record, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (h *Hybrid) DeleteStudent(ctx context.Context, id string) error {
	return h.DeleteRaw(ctx, CollectionStudents, id)
}

// SetStudents rewrites every student record in full; the derivation
// engine's write-back path
func (h *Hybrid) SetStudents(ctx context.Context, students []models.Student) error {
	records := make([]json.RawMessage, 0, len(students))
	for _, s := range students {
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		records = append(records, data)
	}
	return h.SetAllRaw(ctx, CollectionStudents, records)
}

// GetCompetitions returns every competition, normalized to the canonical
// prize-based result shape
func (h *Hybrid) GetCompetitions(ctx context.Context) ([]models.Competition, error) {
	records, err := h.GetAllRaw(ctx, CollectionCompetitions)
	if err != nil {
		return nil, err
	}
	competitions := make([]models.Competition, 0, len(records))
	for _, record := range records {
		var c models.Competition
		if err := json.Unmarshal(record, &c); err != nil {
			log.Printf("Skipping malformed competition record: %v", err)
			continue
		}
		c.Normalize()
		competitions = append(competitions, c)
	}
	return competitions, nil
}

func (h *Hybrid) GetCompetitionByID(ctx context.Context, id string) (*models.Competition, error) {
	record, err := h.GetByIDRaw(ctx, CollectionCompetitions, id)
	if err != nil || record == nil {
		return nil, err
	}
	var c models.Competition
	if err := json.Unmarshal(record, &c); err != nil {
		return nil, fmt.Errorf("malformed competition record %s: %w", id, err)
	}
	c.Normalize()
	return &c, nil
}

func (h *Hybrid) AddCompetition(ctx context.Context, c models.Competition) (models.Competition, error) {
	if c.Status == "" {
		c.Status = models.StatusUpcoming
	}
	if c.Participants == nil {
		c.Participants = []models.Participant{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return models.Competition{}, err
	}
	record, err := h.CreateRaw(ctx, CollectionCompetitions, data)
	if err != nil {
		return models.Competition{}, err
	}
	var created models.Competition
	if err := json.Unmarshal(record, &created); err != nil {
		return models.Competition{}, err
	}
	return created, nil
}

func (h *Hybrid) UpdateCompetition(ctx context.Context, id string, partial any) (*models.Competition, error) {
	data, err := json.Marshal(partial)
	if err != nil {
		return nil, err
	}
	record, err := h.UpdateRaw(ctx, CollectionCompetitions, id, data)
	if err != nil {
		return nil, err
	}
	var c models.Competition
	if err := json.Unmarshal(record, &c); err != nil {
		return nil, err
	}
	c.Normalize()
	return &c, nil
}

func (h *Hybrid) DeleteCompetition(ctx context.Context, id string) error {
	return h.DeleteRaw(ctx, CollectionCompetitions, id)
}

// GetAnnouncements returns every announcement
func (h *Hybrid) GetAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	records, err := h.GetAllRaw(ctx, CollectionAnnouncements)
	if err != nil {
		return nil, err
	}
	announcements := make([]models.Announcement, 0, len(records))
	for _, record := range records {
		var a models.Announcement
		if err := json.Unmarshal(record, &a); err != nil {
			log.Printf("Skipping malformed announcement record: %v", err)
			continue
		}
		announcements = append(announcements, a)
	}
	return announcements, nil
}

func (h *Hybrid) GetAnnouncementByID(ctx context.Context, id string) (*models.Announcement, error) {
	record, err := h.GetByIDRaw(ctx, CollectionAnnouncements, id)
	if err != nil || record == nil {
		return nil, err
	}
	var a models.Announcement
	if err := json.Unmarshal(record, &a); err != nil {
		return nil, fmt.Errorf("malformed announcement record %s: %w", id, err)
	}
	return &a, nil
}

func (h *Hybrid) AddAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	a.Active = true
	if a.CreatedAt == "" {
		a.CreatedAt = time.Now().Format(time.RFC3339)
	}
	data, err := json.Marshal(a)
	if err != nil {
		return models.Announcement{}, err
	}
	record, err := h.CreateRaw(ctx, CollectionAnnouncements, data)
	if err != nil {
		return models.Announcement{}, err
	}
	var created models.Announcement
	if err := json.Unmarshal(record, &created); err != nil {
		return models.Announcement{}, err
	}
	return created, nil
}

func (h *Hybrid) UpdateAnnouncement(ctx context.Context, id string, partial any) (*models.Announcement, error) {
	data, err := json.Marshal(partial)
	if err != nil {
		return nil, err
	}
	record, err := h.UpdateRaw(ctx, CollectionAnnouncements, id, data)
	if err != nil {
		return nil, err
	}
	var a models.Announcement
	if err := json.Unmarshal(record, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (h *Hybrid) DeleteAnnouncement(ctx context.Context, id string) error {
	return h.DeleteRaw(ctx, CollectionAnnouncements, id)
}

// GetGallery returns every gallery image, normalized to the canonical
// src payload
func (h *Hybrid) GetGallery(ctx context.Context) ([]models.GalleryImage, error) {
	records, err := h.GetAllRaw(ctx, CollectionGallery)
	if err != nil {
		return nil, err
	}
	images := make([]models.GalleryImage, 0, len(records))
	for _, record := range records {
		var g models.GalleryImage
		if err := json.Unmarshal(record, &g); err != nil {
			log.Printf("Skipping malformed gallery record: %v", err)
			continue
		}
		g.Normalize()
		images = append(images, g)
	}
	return images, nil
}

func (h *Hybrid) AddGalleryImage(ctx context.Context, g models.GalleryImage) (models.GalleryImage, error) {
	g.Normalize()
	if g.UploadedAt == "" {
		g.UploadedAt = time.Now().Format(time.RFC3339)
	}
	data, err := json.Marshal(g)
	if err != nil {
		return models.GalleryImage{}, err
	}
	record, err := h.CreateRaw(ctx, CollectionGallery, data)
	if err != nil {
		return models.GalleryImage{}, err
	}
	var created models.GalleryImage
	if err := json.Unmarshal(record, &created); err != nil {
		return models.GalleryImage{}, err
	}
	return created, nil
}

func (h *Hybrid) DeleteGalleryImage(ctx context.Context, id string) error {
	return h.DeleteRaw(ctx, CollectionGallery, id)
}

// GetFestival returns the singleton festival metadata, or the defaults
// when no record has been stored yet
func (h *Hybrid) GetFestival(ctx context.Context) (models.Festival, error) {
	record, err := h.GetByIDRaw(ctx, CollectionFestivalData, models.FestivalDocID)
	if err != nil {
		return models.Festival{}, err
	}
	if record == nil {
		return models.DefaultFestival(), nil
	}
	var f models.Festival
	if err := json.Unmarshal(record, &f); err != nil {
		return models.Festival{}, fmt.Errorf("malformed festival record: %w", err)
	}
	return f, nil
}

// SetFestival stores the festival metadata under the fixed singleton id
func (h *Hybrid) SetFestival(ctx context.Context, f models.Festival) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	existing, err := h.GetByIDRaw(ctx, CollectionFestivalData, models.FestivalDocID)
	if err != nil {
		return err
	}
	if existing == nil {
		_, err = h.CreateRaw(ctx, CollectionFestivalData, WithID(data, models.FestivalDocID))
		return err
	}
	_, err = h.UpdateRaw(ctx, CollectionFestivalData, models.FestivalDocID, data)
	return err
}

// GetAdmins returns every admin account
func (h *Hybrid) GetAdmins(ctx context.Context) ([]models.Admin, error) {
	records, err := h.GetAllRaw(ctx, CollectionAdmins)
	if err != nil {
		return nil, err
	}
	admins := make([]models.Admin, 0, len(records))
	for _, record := range records {
		var a models.Admin
		if err := json.Unmarshal(record, &a); err != nil {
			log.Printf("Skipping malformed admin record: %v", err)
			continue
		}
		admins = append(admins, a)
	}
	return admins, nil
}

// ValidateAdmin performs the portal's plaintext credential equality check
// and returns nil when no admin matches
func (h *Hybrid) ValidateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	admins, err := h.GetAdmins(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].Username == username && admins[i].Password == password {
			return &admins[i], nil
		}
	}
	return nil, nil
}

// OnStudentsChange subscribes to full student snapshots; the returned
// function unsubscribes
func (h *Hybrid) OnStudentsChange(callback func([]models.Student)) func() {
	return realtime.Subscribe(CollectionStudents, func(snapshot realtime.Snapshot) {
		students := make([]models.Student, 0, len(snapshot.Records))
		for _, record := range snapshot.Records {
			var s models.Student
			if err := json.Unmarshal(record, &s); err == nil {
				students = append(students, s)
			}
		}
		callback(students)
	})
}

// OnCompetitionsChange subscribes to full competition snapshots
func (h *Hybrid) OnCompetitionsChange(callback func([]models.Competition)) func() {
	return realtime.Subscribe(CollectionCompetitions, func(snapshot realtime.Snapshot) {
		competitions := make([]models.Competition, 0, len(snapshot.Records))
		for _, record := range snapshot.Records {
			var c models.Competition
			if err := json.Unmarshal(record, &c); err == nil {
				c.Normalize()
				competitions = append(competitions, c)
			}
		}
		callback(competitions)
	})
}

// OnAnnouncementsChange subscribes to full announcement snapshots
func (h *Hybrid) OnAnnouncementsChange(callback func([]models.Announcement)) func() {
	return realtime.Subscribe(CollectionAnnouncements, func(snapshot realtime.Snapshot) {
		announcements := make([]models.Announcement, 0, len(snapshot.Records))
		for _, record := range snapshot.Records {
			var a models.Announcement
			if err := json.Unmarshal(record, &a); err == nil {
				announcements = append(announcements, a)
			}
		}
		callback(announcements)
	})
}

// OnGalleryChange subscribes to full gallery snapshots
func (h *Hybrid) OnGalleryChange(callback func([]models.GalleryImage)) func() {
	return realtime.Subscribe(CollectionGallery, func(snapshot realtime.Snapshot) {
		images := make([]models.GalleryImage, 0, len(snapshot.Records))
		for _, record := range snapshot.Records {
			var g models.GalleryImage
			if err := json.Unmarshal(record, &g); err == nil {
				g.Normalize()
				images = append(images, g)
			}
		}
		callback(images)
	})
}
