package model

import (
	"fmt"
	"strings"
)

type UserRole int

const (
	RoleReader UserRole = iota
	RoleAdmin
)

var roleNames = map[UserRole]string{
	RoleReader: "Reader",
	RoleAdmin:  "Admin",
}

func (r UserRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("UserRole(%d)", int(r))
}

// ParseUserRole matches role names case-insensitively.
func ParseUserRole(value string) (UserRole, error) {
	for role, name := range roleNames {
		if strings.EqualFold(name, value) {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown user role %q", value)
}

type User struct {
	UserID     int64
	Name       string
	Email      string
	OAuthID    string
	OAuthToken string
	Role       UserRole
}

// UserPreference records how strongly a user wants a category in their feed.
type UserPreference struct {
	UserPreferenceID int64
	UserID           int64
	CategoryID       int64
	Preference       int
}
