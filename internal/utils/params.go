package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetNotificationID(ctx *gin.Context) (uint, error) {
	idStr := ctx.Param("notification_id")

	if idStr == "" {
		return 0, errors.New("Notification ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Notification ID")
	}

	return uint(id), nil
}
