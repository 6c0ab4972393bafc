package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch-dev/scholarmatch/db"
	"github.com/scholarmatch-dev/scholarmatch/internal/matching"
	"github.com/scholarmatch-dev/scholarmatch/internal/models"
	"github.com/scholarmatch-dev/scholarmatch/internal/types"
	"github.com/scholarmatch-dev/scholarmatch/internal/utils"
)

// GetDashboard returns the recommendation list and unread notification
// count shown on the landing page after login.
func GetDashboard(ctx *gin.Context) {
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

	var active []models.Scholarship

	if err := db.DB.Where("is_active = ?", true).Find(&active).Error; err != nil {
		log.Printf("Failed to fetch scholarships: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	recommended := matching.Recommend(user, active)

	unread, err := notificationService().UnreadCount(user.ID)

	if err != nil {
		log.Printf("Failed to count unread notifications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	response := make([]types.ScholarshipResponse, 0, len(recommended))

	for _, scholarship := range recommended {
		response = append(response, types.NewScholarshipResponse(scholarship))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"recommended_scholarships": response,
		"unread_notifications":     unread,
		"user":                     types.NewUserResponse(user),
	})
}
