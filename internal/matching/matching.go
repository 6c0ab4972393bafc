package matching

import (
	"strings"

	"github.com/scholarmatch-dev/scholarmatch/internal/models"
)

// MaxRecommendations caps the dashboard recommendation list.
const MaxRecommendations = 6

// Recommend narrows the active scholarships by the user's stored
// preferences: exact program level, then case-insensitive substring matches
// on preferred country and field of study. When nothing survives the
// filters it falls back to the featured subset, ignoring preferences
// entirely. Input order is preserved; the result is capped at
// MaxRecommendations. Pure function, no store access.
func Recommend(user models.User, active []models.Scholarship) []models.Scholarship {
	matched := narrow(user, active)

	if len(matched) == 0 {
		for _, scholarship := range active {
			if scholarship.IsFeatured {
				matched = append(matched, scholarship)
			}
		}
	}

	if len(matched) > MaxRecommendations {
		matched = matched[:MaxRecommendations]
	}

	return matched
}

func narrow(user models.User, active []models.Scholarship) []models.Scholarship {
	var matched []models.Scholarship

	for _, scholarship := range active {
		if user.ProgramLevel != nil && scholarship.ProgramLevel != *user.ProgramLevel {
			continue
		}

		if user.PreferredCountry != nil && !containsFold(scholarship.StudyCountry, *user.PreferredCountry) {
			continue
		}

		if user.FieldOfStudy != nil && !containsFold(scholarship.FieldOfStudy, *user.FieldOfStudy) {
			continue
		}

		matched = append(matched, scholarship)
	}

	return matched
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
