package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch-dev/scholarmatch/db"
	"github.com/scholarmatch-dev/scholarmatch/internal/auth"
	"github.com/scholarmatch-dev/scholarmatch/internal/models"
	"github.com/scholarmatch-dev/scholarmatch/internal/types"
	"github.com/scholarmatch-dev/scholarmatch/internal/utils"
	"github.com/scholarmatch-dev/scholarmatch/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// GetSettings returns the account and profile for the settings page,
// creating the profile row on first access.
func GetSettings(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	var profile models.UserProfile

	if err := db.DB.Where(models.UserProfile{UserID: user.ID}).FirstOrCreate(&profile).Error; err != nil {
		log.Printf("Failed to load user profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.NewUserResponse(user),
		"profile": types.ProfileResponse{
			Phone:   profile.Phone,
			Address: profile.Address,
			Bio:     profile.Bio,
		},
	})
}

// stringField reports whether key was sent and its string value. Non-string
// values count as absent.
func stringField(data map[string]interface{}, key string) (string, bool) {
	value, ok := data[key]

	if !ok {
		return "", false
	}

	s, ok := value.(string)

	if !ok {
		return "", false
	}

	return s, true
}

// applyProfileUpdate copies the keys present in data onto the user and
// profile rows: absent keys stay untouched, empty strings clear optional
// fields, full_name is truncated to 50 characters, and an unparseable cgpa
// leaves the stored value alone. The returned error map is non-empty only
// for invalid enum values.
func applyProfileUpdate(user *models.User, profile *models.UserProfile, data map[string]interface{}) validation.Errors {
	if fullName, ok := stringField(data, "full_name"); ok {
		if runes := []rune(fullName); len(runes) > 50 {
			fullName = string(runes[:50])
		}
		user.FullName = fullName
	}

	if level, ok := stringField(data, "program_level"); ok {
		if level != "" && !models.ProgramLevel(level).Valid() {
			return validation.Errors{"program_level": "Please select a valid program level"}
		}
		user.ProgramLevel = optionalProgramLevel(level)
	}

	if level, ok := stringField(data, "preferred_program_level"); ok {
		if level != "" && !models.ProgramLevel(level).ValidPreference() {
			return validation.Errors{"preferred_program_level": "Please select a valid program level"}
		}
		user.PreferredProgramLevel = optionalProgramLevel(level)
	}

	if field, ok := stringField(data, "field_of_study"); ok {
		user.FieldOfStudy = validation.NormalizeOptional(field)
	}

	if country, ok := stringField(data, "country"); ok {
		user.Country = validation.NormalizeOptional(country)
	}

	// An empty or unparseable cgpa leaves the stored value unchanged.
	if raw, ok := data["cgpa"]; ok {
		switch value := raw.(type) {
		case float64:
			user.CGPA = &value
		case string:
			if parsed := validation.ParseCGPA(value); parsed != nil {
				user.CGPA = parsed
			}
		}
	}

	if grades, ok := stringField(data, "grades"); ok {
		user.Grades = validation.NormalizeOptional(grades)
	}

	if country, ok := stringField(data, "preferred_country"); ok {
		user.PreferredCountry = validation.NormalizeOptional(country)
	}

	if budget, ok := stringField(data, "budget_range"); ok {
		user.BudgetRange = validation.NormalizeOptional(budget)
	}

	if duration, ok := stringField(data, "study_duration"); ok {
		user.StudyDuration = validation.NormalizeOptional(duration)
	}

	if raw, ok := data["newsletter_subscribed"]; ok {
		user.NewsletterSubscribed = validation.ParseCheckbox(raw)
	}

	if phone, ok := stringField(data, "phone"); ok {
		profile.Phone = validation.NormalizeOptional(phone)
	}

	if address, ok := stringField(data, "address"); ok {
		profile.Address = validation.NormalizeOptional(address)
	}

	if bio, ok := stringField(data, "bio"); ok {
		profile.Bio = validation.NormalizeOptional(bio)
	}

	return nil
}

// UpdateProfile applies a partial update to the account and profile rows.
func UpdateProfile(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	var data map[string]interface{}

	if err := ctx.BindJSON(&data); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	var profile models.UserProfile

	if err := db.DB.Where(models.UserProfile{UserID: user.ID}).FirstOrCreate(&profile).Error; err != nil {
		log.Printf("Failed to load user profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	if fieldErrors := applyProfileUpdate(&user, &profile, data); len(fieldErrors) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrors})
		return
	}

	if err := db.DB.Save(&user).Error; err != nil {
		log.Printf("Profile update error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating profile: " + err.Error()})
		return
	}

	if err := db.DB.Save(&profile).Error; err != nil {
		log.Printf("Profile update error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating profile: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully!",
	})
}

func ChangePassword(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	var req ChangePasswordRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All password fields are required"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Current password is incorrect"})
		return
	}

	if len(req.NewPassword) < 8 {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "New password must be at least 8 characters long"})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "New passwords do not match"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash new password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	if err := db.DB.Model(&user).Update("password_hash", string(passwordHash)).Error; err != nil {
		log.Printf("Password change error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error changing password: " + err.Error()})
		return
	}

	// Re-establish the session under the new credential.
	token, err := auth.GenerateJWT(user.ID, user.Email, auth.SessionTTL)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	setSessionCookie(ctx, token, int(auth.SessionTTL.Seconds()))

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully!",
	})
}
