package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch-dev/scholarmatch/db"
	"github.com/scholarmatch-dev/scholarmatch/internal/auth"
	"github.com/scholarmatch-dev/scholarmatch/internal/models"
	"github.com/scholarmatch-dev/scholarmatch/internal/types"
	"github.com/scholarmatch-dev/scholarmatch/internal/utils"
	"github.com/scholarmatch-dev/scholarmatch/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupRequest mirrors the signup form's hyphenated field names.
type SignupRequest struct {
	Email                 string      `json:"email"`
	Password              string      `json:"password"`
	ConfirmPassword       string      `json:"confirm-password"`
	FullName              string      `json:"full-name"`
	ProgramLevel          string      `json:"program-level"`
	FieldOfStudy          string      `json:"field-of-study"`
	CGPA                  string      `json:"cgpa"`
	Grades                string      `json:"grades"`
	Country               string      `json:"country"`
	PreferredCountry      string      `json:"preferred-country"`
	PreferredProgramLevel string      `json:"preferred-program-level"`
	BudgetRange           string      `json:"budget-range"`
	StudyDuration         string      `json:"study-duration"`
	Newsletter            interface{} `json:"newsletter"`
}

type LoginRequest struct {
	Email      string      `json:"email"`
	Password   string      `json:"password"`
	RememberMe interface{} `json:"remember-me"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

func setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func optionalProgramLevel(s string) *models.ProgramLevel {
	normalized := validation.NormalizeOptional(s)
	if normalized == nil {
		return nil
	}

	level := models.ProgramLevel(*normalized)
	return &level
}

func Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	req.Grades = strings.TrimSpace(req.Grades)

	fieldErrors := validation.ValidateSignup(validation.SignupInput{
		Email:                 req.Email,
		Password:              req.Password,
		ConfirmPassword:       req.ConfirmPassword,
		FullName:              req.FullName,
		Grades:                req.Grades,
		ProgramLevel:          req.ProgramLevel,
		PreferredProgramLevel: req.PreferredProgramLevel,
	})

	if _, emailInvalid := fieldErrors["email"]; !emailInvalid {
		var existingUser models.User

		err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

		if err == nil {
			fieldErrors["email"] = "Email already exists"
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Database error when checking existing user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
	}

	if len(fieldErrors) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrors})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	newUser := models.User{
		Email:                 req.Email,
		PasswordHash:          string(passwordHash),
		FullName:              req.FullName,
		ProgramLevel:          optionalProgramLevel(req.ProgramLevel),
		FieldOfStudy:          validation.NormalizeOptional(req.FieldOfStudy),
		CGPA:                  validation.ParseCGPA(req.CGPA),
		Grades:                validation.NormalizeOptional(req.Grades),
		Country:               validation.NormalizeOptional(req.Country),
		PreferredCountry:      validation.NormalizeOptional(req.PreferredCountry),
		PreferredProgramLevel: optionalProgramLevel(req.PreferredProgramLevel),
		BudgetRange:           validation.NormalizeOptional(req.BudgetRange),
		StudyDuration:         validation.NormalizeOptional(req.StudyDuration),
		NewsletterSubscribed:  validation.ParseCheckbox(req.Newsletter),
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating account: " + err.Error()})
		return
	}

	if err := db.DB.Create(&models.UserProfile{UserID: newUser.ID}).Error; err != nil {
		log.Printf("Failed to create user profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating account: " + err.Error()})
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email, auth.SessionTTL)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	setSessionCookie(ctx, token, int(auth.SessionTTL.Seconds()))

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"redirect": types.DashboardRedirect,
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	fieldErrors := validation.Errors{}

	if req.Email == "" {
		fieldErrors["email"] = "Email is required"
	}

	if req.Password == "" {
		fieldErrors["password"] = "Password is required"
	}

	if len(fieldErrors) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrors})
		return
	}

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same response as a wrong password, so the two are
			// indistinguishable to the caller.
			ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": validation.Errors{"email": "Invalid email or password"}})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(req.Password))

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": validation.Errors{"email": "Invalid email or password"}})
		return
	}

	rememberMe := validation.ParseCheckbox(req.RememberMe)

	ttl := auth.SessionTTL
	cookieMaxAge := 0 // session cookie, gone when the browser closes

	if rememberMe {
		ttl = auth.RememberTTL
		cookieMaxAge = int(auth.RememberTTL.Seconds())
	}

	token, err := auth.GenerateJWT(existingUser.ID, existingUser.Email, ttl)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	setSessionCookie(ctx, token, cookieMaxAge)

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"redirect": types.DashboardRedirect,
	})
}

func Logout(ctx *gin.Context) {
	setSessionCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "You have been logged out successfully."})
}

func Me(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}
