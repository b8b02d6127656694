package user

import "fmt"

// Role determines which operations a user may invoke. It is fixed at
// registration time.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// CanPostJobs reports whether the role may create job postings and review
// applications to them.
func (r Role) CanPostJobs() bool {
	return r == RoleRecruiter || r == RoleAdmin
}
