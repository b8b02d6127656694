package user

import "testing"

func TestParseRole_ValidValues(t *testing.T) {
	for _, s := range []string{"candidate", "recruiter", "admin"} {
		got, err := ParseRole(s)
		if err != nil {
			t.Errorf("ParseRole(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseRole(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseRole_InvalidValue(t *testing.T) {
	if _, err := ParseRole("superuser"); err == nil {
		t.Error("ParseRole(\"superuser\") expected error, got nil")
	}
	if _, err := ParseRole(""); err == nil {
		t.Error("ParseRole(\"\") expected error, got nil")
	}
}

func TestRole_CanPostJobs(t *testing.T) {
	if RoleCandidate.CanPostJobs() {
		t.Error("candidate should not be able to post jobs")
	}
	if !RoleRecruiter.CanPostJobs() {
		t.Error("recruiter should be able to post jobs")
	}
	if !RoleAdmin.CanPostJobs() {
		t.Error("admin should be able to post jobs")
	}
}
