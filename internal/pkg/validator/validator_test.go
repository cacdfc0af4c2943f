package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestRequired(t *testing.T) {
	errs := Required(
		[]string{"email", "name", "site"},
		map[string]string{"email": "a@x.com", "name": "  ", "site": ""},
	)
	if len(errs) != 2 {
		t.Fatalf("Required returned %d errors, want 2", len(errs))
	}
	if errs[0].Field != "name" || errs[1].Field != "site" {
		t.Errorf("fields = [%s %s], want [name site]", errs[0].Field, errs[1].Field)
	}
	if errs.Error() != "name is required; site is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}

func TestRequired_AllPresent(t *testing.T) {
	errs := Required([]string{"email"}, map[string]string{"email": "a@x.com"})
	if errs != nil {
		t.Errorf("Required returned %v, want nil", errs)
	}
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"Admin", "Manager"}
	if !IsInSlice("Admin", roles) {
		t.Error("IsInSlice(Admin) = false, want true")
	}
	if IsInSlice("admin", roles) {
		t.Error("IsInSlice(admin) = true, want false (case-sensitive)")
	}
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"3", "0.5", "-1", "12.25"} {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "three", "1,5", "1.2.3"} {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDDMMYYYY(t *testing.T) {
	if !IsValidDDMMYYYY("01/07/2025") {
		t.Error("IsValidDDMMYYYY(01/07/2025) = false, want true")
	}
	for _, s := range []string{"2025-07-01", "1/7/2025", "01-07-2025", ""} {
		if IsValidDDMMYYYY(s) {
			t.Errorf("IsValidDDMMYYYY(%q) = true, want false", s)
		}
	}
}
