package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, handler gin.HandlerFunc, configure func(*gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if configure != nil {
		configure(ctx)
	}

	handler(ctx)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	return w, response
}

func TestGetUnreadCount(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	w, response := getJSON(t, GetUnreadCount, asUser(1, "a@b.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), response["unread_count"])
}

func TestMarkNotificationRead_NotOwnedIsNotFound(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w, response := postJSON(t, MarkNotificationRead, `{}`, func(ctx *gin.Context) {
		asUser(1, "a@b.com")(ctx)
		ctx.Params = gin.Params{{Key: "notification_id", Value: "999"}}
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Notification not found", response["message"])
}

func TestMarkNotificationRead_Success(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w, response := postJSON(t, MarkNotificationRead, `{}`, func(ctx *gin.Context) {
		asUser(1, "a@b.com")(ctx)
		ctx.Params = gin.Params{{Key: "notification_id", Value: "42"}}
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Notification marked as read", response["message"])
}

func TestMarkNotificationRead_BadID(t *testing.T) {
	useMockDB(t)

	w, response := postJSON(t, MarkNotificationRead, `{}`, func(ctx *gin.Context) {
		asUser(1, "a@b.com")(ctx)
		ctx.Params = gin.Params{{Key: "notification_id", Value: "abc"}}
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, response["success"])
}

func TestDeleteSelectedNotifications_EmptySelection(t *testing.T) {
	useMockDB(t)

	w, response := postJSON(t, DeleteSelectedNotifications, `{"notification_ids": []}`, asUser(1, "a@b.com"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "No notifications selected", response["message"])
}

func TestDeleteSelectedNotifications_ReportsCount(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "notifications"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	w, response := postJSON(t, DeleteSelectedNotifications, `{"notification_ids": [10, 11, 999]}`, asUser(1, "a@b.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, float64(2), response["deleted_count"])
	assert.Equal(t, "2 notification(s) deleted successfully", response["message"])
}

func TestDeleteAllNotifications_ZeroIsSuccess(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "notifications" WHERE user_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w, response := postJSON(t, DeleteAllNotifications, `{}`, asUser(1, "a@b.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, float64(0), response["deleted_count"])
}

func TestMarkAllNotificationsRead_ReportsUpdatedCount(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	w, response := postJSON(t, MarkAllNotificationsRead, `{}`, asUser(1, "a@b.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), response["updated_count"])
	assert.Equal(t, "3 notifications marked as read", response["message"])
}
