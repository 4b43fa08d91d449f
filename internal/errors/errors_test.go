package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

// 领域未找到错误必须带上资源化的错误代码
func TestDomainNotFoundCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		code string
	}{
		{NewMentorNotFound("m_1"), "MENTOR_NOT_FOUND"},
		{NewRequestNotFound("req_1"), "REQUEST_NOT_FOUND"},
		{NewGoalNotFound("g_1"), "GOAL_NOT_FOUND"},
		{NewNotificationNotFound("n_1"), "NOTIFICATION_NOT_FOUND"},
	}

	for _, tc := range cases {
		if tc.err.Code != tc.code {
			t.Errorf("期望错误代码 %s，实际 %s", tc.code, tc.err.Code)
		}
		if !IsNotFoundError(tc.err) {
			t.Errorf("%s 应当被识别为未找到错误", tc.code)
		}
	}
}

func TestDuplicateRequestCode(t *testing.T) {
	err := NewDuplicateRequest()
	if err.Code != "REQUEST_DUPLICATE" {
		t.Errorf("期望错误代码 REQUEST_DUPLICATE，实际 %s", err.Code)
	}
	if !IsConflictError(err) {
		t.Error("重复请求应当被识别为冲突错误")
	}
}

func TestValidationCodes(t *testing.T) {
	if got := NewInvalid(ResourceMessage, "消息内容不能为空").Code; got != "MESSAGE_INVALID" {
		t.Errorf("期望错误代码 MESSAGE_INVALID，实际 %s", got)
	}
	if got := NewInvalid(ResourceThread, "线程ID不能为空").Code; got != "THREAD_INVALID" {
		t.Errorf("期望错误代码 THREAD_INVALID，实际 %s", got)
	}
	if got := NewValidationError("姓名不能为空", nil).Code; got != "VALIDATION_ERROR" {
		t.Errorf("无关联资源的验证错误应当使用通用代码，实际 %s", got)
	}
	if !IsValidationError(NewInvalid(ResourceGoal, "目标内容不能为空")) {
		t.Error("NewInvalid 应当被识别为验证错误")
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := stderrors.New("磁盘写入失败")
	err := NewProcessingError("保存请求失败", cause)

	if err.Code != "PROCESSING_ERROR" {
		t.Errorf("期望错误代码 PROCESSING_ERROR，实际 %s", err.Code)
	}
	if want := fmt.Sprintf("保存请求失败: %v", cause); err.Error() != want {
		t.Errorf("期望错误消息 %q，实际 %q", want, err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("应当能沿错误链找到原始错误")
	}
}

func TestAsAppErrorThroughWrap(t *testing.T) {
	wrapped := fmt.Errorf("更新请求失败: %w", NewMentorNotFound("m_9"))

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("包装后的错误应当仍能提取 AppError")
	}
	if appErr.Code != "MENTOR_NOT_FOUND" {
		t.Errorf("期望错误代码 MENTOR_NOT_FOUND，实际 %s", appErr.Code)
	}

	if _, ok := AsAppError(stderrors.New("普通错误")); ok {
		t.Error("普通错误不应当被提取为 AppError")
	}
}
