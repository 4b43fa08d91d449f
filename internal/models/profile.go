// internal/models/profile.go
package models

import (
	"strings"
	"time"
)

// UserType 用户角色类型
type UserType string

const (
	UserTypeMentee UserType = "mentee"
	UserTypeMentor UserType = "mentor"
)

// UserRecord 基础用户记录，保存入驻时选择的角色
type UserRecord struct {
	UserType  UserType  `json:"user_type"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// MenteeProfile 学员档案
type MenteeProfile struct {
	Name       string   `json:"name"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	TargetRole string   `json:"target_role,omitempty"`
	LookingFor []string `json:"looking_for,omitempty"`
	Interests  string   `json:"interests,omitempty"`
	CVName     string   `json:"cv_name,omitempty"`
}

// MentorProfile 导师档案
type MentorProfile struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Company   string `json:"company,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// CurrentUser 当前会话用户的解析结果
type CurrentUser struct {
	Role  UserType `json:"role"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
}

// FirstNameOr 取显示名中的名字部分，缺省返回 fallback
func (u CurrentUser) FirstNameOr(fallback string) string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}
