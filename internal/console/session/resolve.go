package session

import "jobboard/internal/authz"

// Identity is the resolved sign-in state for one command invocation.
type Identity struct {
	Role   authz.Role
	Record Record
}

// Resolve reads the stored sessions and reduces them to a single
// identity. The admin record wins when both roles are somehow present;
// no record at all resolves to RoleNone.
func (s *Store) Resolve() (Identity, error) {
	if rec, ok, err := s.Get(string(authz.RoleAdmin)); err != nil {
		return Identity{}, err
	} else if ok {
		return Identity{Role: authz.RoleAdmin, Record: rec}, nil
	}
	if rec, ok, err := s.Get(string(authz.RoleEmployer)); err != nil {
		return Identity{}, err
	} else if ok {
		return Identity{Role: authz.RoleEmployer, Record: rec}, nil
	}
	return Identity{Role: authz.RoleNone}, nil
}
