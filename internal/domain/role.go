package domain

import "fmt"

// Role represents a role in the game. A player's role is fixed at creation.
type Role int

const (
	RoleNeutral Role = iota
	RoleL
	RoleKira
	RoleInvestigator
	RoleKiraWorshipper
)

var roleNames = map[Role]string{
	RoleNeutral:        "neutral",
	RoleL:              "l",
	RoleKira:           "kira",
	RoleInvestigator:   "investigator",
	RoleKiraWorshipper: "kira_worshipper",
}

// Valid reports whether r is a member of the closed role set
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// String returns the role name
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}
