package model

import (
	"strings"
	"time"
)

type Role string

const (
	ROLE_UNKNOWN Role = ""
	ROLE_OWNER   Role = "owner"
	ROLE_ADMIN   Role = "admin"
)

func ParseRole(r string) Role {
	switch strings.ToLower(r) {
	case "owner":
		return ROLE_OWNER
	case "admin":
		return ROLE_ADMIN
	default:
		return ROLE_UNKNOWN
	}
}

type UserRole struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	Role    Role      `json:"role"`
	Created time.Time `json:"created"`
}
