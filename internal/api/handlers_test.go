package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mentorme/MentorMe/internal/errors"
)

// 服务层错误必须原样带出领域错误代码和对应状态码
func TestHandleServiceErrorCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{Response: NewResponseHelper()}

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.NewMentorNotFound("m_1"), http.StatusNotFound, "MENTOR_NOT_FOUND"},
		{apperrors.NewRequestNotFound("req_1"), http.StatusNotFound, "REQUEST_NOT_FOUND"},
		{apperrors.NewGoalNotFound("g_1"), http.StatusNotFound, "GOAL_NOT_FOUND"},
		{apperrors.NewNotificationNotFound("n_1"), http.StatusNotFound, "NOTIFICATION_NOT_FOUND"},
		{apperrors.NewDuplicateRequest(), http.StatusConflict, "REQUEST_DUPLICATE"},
		{apperrors.NewInvalid(apperrors.ResourceMessage, "消息内容不能为空"), http.StatusBadRequest, "MESSAGE_INVALID"},
		{apperrors.NewProcessingError("保存失败", nil), http.StatusInternalServerError, ErrorInternalError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.handleServiceError(c, tc.err)

		assert.Equal(t, tc.status, w.Code)

		var resp APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error, "code %s", tc.code)
		assert.Equal(t, tc.code, resp.Error.Code)
		assert.False(t, resp.Success)
	}
}
