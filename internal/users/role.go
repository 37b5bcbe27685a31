package users

import (
	"fmt"
	"strings"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"gopkg.in/yaml.v3"
)

// Role decides which task operations a requester may perform.
type Role int

const (
	RoleEmployee Role = iota
	RoleAdmin
)

// ParseRole accepts "employee" or "admin", case-insensitively. An empty string is employee.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "employee", "user":
		return RoleEmployee, nil
	case "admin":
		return RoleAdmin, nil
	}
	return RoleEmployee, taskerrors.NewValidationError(taskerrors.CodeValidationRole,
		fmt.Sprintf("Unknown role '%s'", s),
		"Parse role").
		WithContext("role", s).
		WithTroubleshooting("Use 'admin' or 'employee'")
}

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "employee"
}

// CanAssign reports whether the role may assign tasks.
func (r Role) CanAssign() bool { return r == RoleAdmin }

// CanDelete reports whether the role may delete tasks.
func (r Role) CanDelete() bool { return r == RoleAdmin }

func (r Role) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

func (r *Role) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
