package entities

import "strings"

type Role string

const (
	RoleClient Role = "client"
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	switch r {
	case RoleClient, RoleWorker, RoleAdmin:
		return r, true
	}
	return "", false
}

// Session identifies the caller of every lifecycle operation.
type Session struct {
	UserID string
	Role   Role
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
