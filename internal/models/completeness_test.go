package models

import "testing"

func completeStudentProfile() StudentProfile {
	return StudentProfile{
		FullName:               "Jane Doe",
		Email:                  "jane@x.edu",
		Phone:                  "555-1111",
		StudentID:              "S100",
		CurrentYear:            2,
		DegreeProgram:          "BSc",
		Major:                  "CS",
		ExpectedGraduationYear: 2026,
	}
}

func TestStudentProfile_AllRequiredFieldsFilled(t *testing.T) {
	p := completeStudentProfile()
	p.RecomputeCompleteness()
	if !p.IsProfileComplete {
		t.Fatalf("expected complete profile")
	}
}

func TestStudentProfile_EmptyPhoneIncomplete(t *testing.T) {
	p := completeStudentProfile()
	p.Phone = ""
	p.RecomputeCompleteness()
	if p.IsProfileComplete {
		t.Fatalf("expected incomplete profile when phone is empty")
	}
}

func TestStudentProfile_WhitespaceOnlyFieldIncomplete(t *testing.T) {
	p := completeStudentProfile()
	p.Major = "   "
	p.RecomputeCompleteness()
	if p.IsProfileComplete {
		t.Fatalf("expected whitespace-only major to fail the check")
	}
}

func TestStudentProfile_OptionalFieldsDoNotAffectResult(t *testing.T) {
	p := completeStudentProfile()
	p.GPA = 0
	p.CareerGoals = ""
	p.Skills = nil
	p.RecomputeCompleteness()
	if !p.IsProfileComplete {
		t.Fatalf("fields outside the required list must not affect completeness")
	}
}

func TestStudentProfile_RecomputeIsIdempotent(t *testing.T) {
	p := completeStudentProfile()
	p.RecomputeCompleteness()
	first := p.IsProfileComplete
	p.RecomputeCompleteness()
	if p.IsProfileComplete != first {
		t.Fatalf("recompute changed result on identical profile: %v -> %v", first, p.IsProfileComplete)
	}
}

func TestAlumniProfile_Completeness(t *testing.T) {
	p := AlumniProfile{
		FullName:        "John Smith",
		Email:           "john@x.edu",
		Phone:           "555-2222",
		GraduationYear:  2018,
		Degree:          "BEng",
		Major:           "EE",
		CurrentJobTitle: "Engineer",
		CurrentCompany:  "Acme",
		Industry:        "Hardware",
		Location:        "Austin",
	}
	p.RecomputeCompleteness()
	if !p.IsProfileComplete {
		t.Fatalf("expected complete alumni profile")
	}

	p.Location = ""
	p.RecomputeCompleteness()
	if p.IsProfileComplete {
		t.Fatalf("expected incomplete alumni profile when location missing")
	}
}

func TestIsComplete_MissingFieldFails(t *testing.T) {
	fields := map[string]interface{}{"a": "x"}
	if IsComplete(fields, []string{"a", "b"}) {
		t.Fatalf("missing required field must fail")
	}
}

func TestIsComplete_ZeroAndFalseArePresent(t *testing.T) {
	fields := map[string]interface{}{
		"count":   0,
		"ratio":   0.0,
		"enabled": false,
	}
	if !IsComplete(fields, []string{"count", "ratio", "enabled"}) {
		t.Fatalf("numeric zero and boolean false must satisfy presence")
	}
}

func TestIsComplete_NilValueFails(t *testing.T) {
	fields := map[string]interface{}{"a": nil}
	if IsComplete(fields, []string{"a"}) {
		t.Fatalf("nil value must fail presence")
	}
}
