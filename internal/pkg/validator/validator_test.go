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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"5", 5, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseID(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateRange(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{"2024-01-18", "2024-01-22", true},
		{"2024-01-22", "2024-01-22", true},
		{"2024-01-23", "2024-01-22", false},
		{"", "2024-01-22", true},
		{"2024-01-18", "", true},
		{"", "", true},
		{"2024/01/18", "2024-01-22", false},
		{"2024-01-18", "tomorrow", false},
	}
	for _, c := range cases {
		if got := IsValidDateRange(c.from, c.to); got != c.want {
			t.Errorf("IsValidDateRange(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestHasExtension(t *testing.T) {
	allowed := []string{".pdf", ".doc", ".docx"}
	valid := []string{"cv.pdf", "CV.PDF", "resume.final.docx"}
	invalid := []string{"cv", "cv.exe", "pdf", ".bashrc"}
	for _, name := range valid {
		if !HasExtension(name, allowed) {
			t.Errorf("HasExtension(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if HasExtension(name, allowed) {
			t.Errorf("HasExtension(%q) = true, want false", name)
		}
	}
}

func TestIsValidRedirectURL(t *testing.T) {
	valid := []string{"http://localhost:3000/hr/meetings", "https://careers.example.com/cb"}
	invalid := []string{"", "/relative", "javascript:alert(1)", "ftp://example.com"}
	for _, u := range valid {
		if !IsValidRedirectURL(u) {
			t.Errorf("IsValidRedirectURL(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidRedirectURL(u) {
			t.Errorf("IsValidRedirectURL(%q) = true, want false", u)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "invalid"},
		{Field: "limit", Message: "required"},
	}
	got := errs.Error()
	want := "date: invalid; limit: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_AddErr(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Fatalf("empty ValidationErrors.Err() = %v, want nil", errs.Err())
	}
	errs.Add("reason", "reason is required")
	err := errs.Err()
	if err == nil {
		t.Fatal("ValidationErrors.Err() = nil, want error")
	}
	if got := errs.ToMap()["reason"]; got != "reason is required" {
		t.Errorf("ToMap()[reason] = %q", got)
	}
}
