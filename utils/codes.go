package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"festival/config"
	"festival/models"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NextStudentCode returns the next sequential registration code after the
// highest numeric suffix found among existing students, e.g. RV2025042
func NextStudentCode(students []models.Student) string {
	prefix := config.StudentCodePrefix
	max := 0
	for _, student := range students {
		if !strings.HasPrefix(student.Code, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(student.Code, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// AssignCompetitionCodes gives every participant a distinct single-letter
// code in shuffled order. More than 26 participants wraps to two-letter
// codes (AA, AB, ...).
func AssignCompetitionCodes(participants []models.Participant) []models.Participant {
	codes := make([]string, len(participants))
	for i := range codes {
		codes[i] = letterCode(i)
	}
	rand.Shuffle(len(codes), func(i, j int) {
		codes[i], codes[j] = codes[j], codes[i]
	})
	out := make([]models.Participant, len(participants))
	copy(out, participants)
	for i := range out {
		out[i].CompetitionCode = codes[i]
	}
	return out
}

func letterCode(i int) string {
	if i < len(codeAlphabet) {
		return string(codeAlphabet[i])
	}
	return string(codeAlphabet[i/len(codeAlphabet)-1]) + string(codeAlphabet[i%len(codeAlphabet)])
}
