package services

import (
	"context"
	"fmt"
	"log"

	"festival/derivation"
	"festival/metrics"
	"festival/storage"
)

// RecomputeStudentRecords loads every student and competition, rebuilds
// the derived fields from competitions alone and writes the students
// back as one batch
func RecomputeStudentRecords(ctx context.Context) (int, error) {
	students, err := storage.Store.GetStudents(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load students: %w", err)
	}
	competitions, err := storage.Store.GetCompetitions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load competitions: %w", err)
	}

	updated := derivation.Recompute(students, competitions)
	if err := storage.Store.SetStudents(ctx, updated); err != nil {
		return 0, fmt.Errorf("failed to save recomputed students: %w", err)
	}

	metrics.DerivationRuns.Inc()
	log.Printf("Recomputed derived records for %d students", len(updated))
	return len(updated), nil
}

// ResetStudentData clears every student's derived fields and removes all
// participation entries from every competition. Each record is handled
// independently so one failure does not abort the reset.
func ResetStudentData(ctx context.Context) (resetStudents, resetCompetitions int, firstErr error) {
	students, err := storage.Store.GetStudents(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load students: %w", err)
	}
	for _, student := range students {
		patch := map[string]any{
			"events":                 []string{},
			"results":                []any{},
			"points":                 0,
			"competitionsRegistered": 0,
			"competitionsCompleted":  0,
		}
		if _, err := storage.Store.UpdateStudent(ctx, student.ID, patch); err != nil {
			log.Printf("Failed to reset student %s: %v", student.ID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		resetStudents++
	}

	competitions, err := storage.Store.GetCompetitions(ctx)
	if err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("failed to load competitions: %w", err)
		}
		return resetStudents, 0, firstErr
	}
	for _, competition := range competitions {
		patch := map[string]any{"participants": []any{}}
		if _, err := storage.Store.UpdateCompetition(ctx, competition.ID, patch); err != nil {
			log.Printf("Failed to reset competition %s: %v", competition.ID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		resetCompetitions++
	}

	log.Printf("Reset %d students and %d competitions", resetStudents, resetCompetitions)
	return resetStudents, resetCompetitions, firstErr
}
