package models

import (
	"time"
)

// UserType определяет роль пользователя в системе
type UserType string

const (
	UserTypePublic   UserType = "public"
	UserTypeFireTeam UserType = "fire_team"
	UserTypeAdmin    UserType = "admin"
)

// User представляет профиль пользователя, полученный от бэкенда
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	UserType    UserType  `json:"userType"`
	BadgeNumber string    `json:"badgeNumber,omitempty"`
	FireStation string    `json:"fireStation,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsFireTeam сообщает, принадлежит ли пользователь пожарной команде
func (u *User) IsFireTeam() bool {
	return u != nil && u.UserType == UserTypeFireTeam
}
