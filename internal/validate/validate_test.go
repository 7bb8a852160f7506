package validate_test

import (
	"testing"

	"github.com/MoroniPereira/TIME-SHEET/internal/validate"
)

func TestEmail(t *testing.T) {
	t.Parallel()
	valid := []string{"a@b.co", "ana.souza@example.com.br"}
	invalid := []string{"", "a@b", "a b@c.com", "@example.com"}
	for _, s := range valid {
		if !validate.Email(s) {
			t.Errorf("Email(%q) = false", s)
		}
	}
	for _, s := range invalid {
		if validate.Email(s) {
			t.Errorf("Email(%q) = true", s)
		}
	}
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()
	if !validate.StrongPassword("Abcdef1!") {
		t.Error("Abcdef1! rejected")
	}
	for _, s := range []string{"", "short1!", "alllower1!", "ALLUPPER1!", "NoDigits!!", "NoSymbol11", "Has Space1!"} {
		if validate.StrongPassword(s) {
			t.Errorf("StrongPassword(%q) = true", s)
		}
	}
}

func TestCPFAndPhone(t *testing.T) {
	t.Parallel()
	if !validate.CPF("123.456.789-09") {
		t.Error("well-formed CPF rejected")
	}
	if validate.CPF("12345678909") {
		t.Error("unformatted CPF accepted")
	}

	for _, s := range []string{"(11) 91234-5678", "11912345678", "1134567890"} {
		if !validate.Phone(s) {
			t.Errorf("Phone(%q) = false", s)
		}
	}
	if validate.Phone("123") {
		t.Error("short phone accepted")
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()
	if !validate.FullName("Ana Souza") {
		t.Error("two-word name rejected")
	}
	for _, s := range []string{"", "Ana", "A Souza", "  Ana  "} {
		if validate.FullName(s) {
			t.Errorf("FullName(%q) = true", s)
		}
	}
}

func TestTimeFormatAndRange(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"00:00", "8:30", "23:59"} {
		if !validate.TimeFormat(s) {
			t.Errorf("TimeFormat(%q) = false", s)
		}
	}
	for _, s := range []string{"24:00", "12:60", "noon", ""} {
		if validate.TimeFormat(s) {
			t.Errorf("TimeFormat(%q) = true", s)
		}
	}

	if !validate.ValidTimeRange("08:00", "17:00") {
		t.Error("forward range rejected")
	}
	if validate.ValidTimeRange("17:00", "08:00") {
		t.Error("backward range accepted")
	}
	if validate.ValidTimeRange("08:00", "08:00") {
		t.Error("zero range accepted")
	}
	// Empty values compose with a separate required rule.
	if !validate.ValidTimeRange("", "17:00") {
		t.Error("empty start rejected")
	}
}

func TestNotFutureDate(t *testing.T) {
	t.Parallel()
	if !validate.NotFutureDate("2020-01-01") {
		t.Error("past date rejected")
	}
	if validate.NotFutureDate("2999-01-01") {
		t.Error("future date accepted")
	}
	if !validate.NotFutureDate("") || !validate.NotFutureDate("not-a-date") {
		t.Error("empty/unparseable must pass")
	}
}

func TestErrorsNilStart(t *testing.T) {
	t.Parallel()
	var e validate.Errors

	e = e.Check(true, "email", "invalid email")
	if !e.Valid() {
		t.Fatal("passing check recorded a failure")
	}

	e = e.Check(false, "email", "invalid email")
	if e.Valid() || e["email"] == "" {
		t.Fatalf("failure not recorded from nil start: %v", e)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()
	e := validate.Errors{}
	e.Check(validate.Email("bad"), "email", "invalid email").
		Check(validate.FullName("Ana Souza"), "fullName", "invalid name")

	if e.Valid() {
		t.Fatal("Valid() = true with one failure")
	}
	if _, ok := e["email"]; !ok {
		t.Error("email failure not recorded")
	}
	if _, ok := e["fullName"]; ok {
		t.Error("passing field recorded")
	}
}
