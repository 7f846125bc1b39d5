package validation

import (
	"strings"
	"testing"
)

func TestTag(t *testing.T) {
	engine := newTestEngine(t)
	cases := []struct {
		name    string
		tag     string
		valid   bool
		wantMsg string
	}{
		{"letters and digits", "AB12", true, ""},
		{"lowercase accepted", "ab-12", true, ""},
		{"underscore", "TAG_7", true, ""},
		{"surrounding space trimmed", "  AB12  ", true, ""},
		{"min length", "AB1", true, ""},
		{"max length", strings.Repeat("A", 20), true, ""},
		{"empty", "", false, "tag is required"},
		{"too short", "AB", false, "between 3 and 20"},
		{"too long", strings.Repeat("A", 21), false, "between 3 and 20"},
		{"digits only", "12345", false, "at least one letter"},
		{"bad characters", "AB 12", false, "may only contain"},
		{"symbols", "AB#12", false, "may only contain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := engine.Tag(tc.tag)
			if res.IsValid() != tc.valid {
				t.Fatalf("Tag(%q) valid=%v, want %v (errors: %v)", tc.tag, res.IsValid(), tc.valid, res.Errors)
			}
			if tc.wantMsg != "" && !containsSubstring(res.Errors, tc.wantMsg) {
				t.Fatalf("Tag(%q) errors %v missing %q", tc.tag, res.Errors, tc.wantMsg)
			}
		})
	}
}

func TestWeightBoundaries(t *testing.T) {
	engine := newTestEngine(t)
	cases := []struct {
		name     string
		kg       float64
		valid    bool
		warnings int
	}{
		{"at min", 1, true, 1}, // below the low-warning threshold
		{"at max", 2000, true, 1},
		{"nominal", 450, true, 0},
		{"below min", 0.5, false, 0},
		{"above max", 2000.5, false, 0},
		{"zero", 0, false, 0},
		{"negative", -10, false, 0},
		{"warn low", 19, true, 1},
		{"warn high", 1201, true, 1},
		{"warn low boundary off", 20, true, 0},
		{"warn high boundary off", 1200, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := engine.Weight(tc.kg)
			if res.IsValid() != tc.valid {
				t.Fatalf("Weight(%g) valid=%v, want %v (errors: %v)", tc.kg, res.IsValid(), tc.valid, res.Errors)
			}
			if len(res.Warnings) != tc.warnings {
				t.Fatalf("Weight(%g) warnings=%v, want %d", tc.kg, res.Warnings, tc.warnings)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	engine := newTestEngine(t)
	longLocal := strings.Repeat("a", 250) + "@b.co"
	cases := []struct {
		name  string
		addr  string
		valid bool
	}{
		{"plain", "rancher@example.com", true},
		{"subdomain", "vet@clinic.farm.example", true},
		{"empty", "", false},
		{"missing at", "rancher.example.com", false},
		{"missing domain dot", "rancher@example", false},
		{"spaces", "ran cher@example.com", false},
		{"too long", longLocal, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := engine.Email(tc.addr)
			if res.IsValid() != tc.valid {
				t.Fatalf("Email(%q) valid=%v, want %v (errors: %v)", tc.addr, res.IsValid(), tc.valid, res.Errors)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	engine := newTestEngine(t)
	cases := []struct {
		name     string
		username string
		valid    bool
		wantMsg  string
	}{
		{"plain", "ranch_hand", true, ""},
		{"with digits", "hand42", true, ""},
		{"hyphen inside", "ranch-hand", true, ""},
		{"min length", "abc", true, ""},
		{"max length", strings.Repeat("a", 30), true, ""},
		{"empty", "", false, "required"},
		{"too short", "ab", false, "between 3 and 30"},
		{"too long", strings.Repeat("a", 31), false, "between 3 and 30"},
		{"uppercase", "RanchHand", false, "lowercase"},
		{"leading hyphen", "-hand", false, "start or end"},
		{"trailing hyphen", "hand-", false, "start or end"},
		{"reserved", "admin", false, "reserved"},
		{"reserved root", "root", false, "reserved"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := engine.Username(tc.username)
			if res.IsValid() != tc.valid {
				t.Fatalf("Username(%q) valid=%v, want %v (errors: %v)", tc.username, res.IsValid(), tc.valid, res.Errors)
			}
			if tc.wantMsg != "" && !containsSubstring(res.Errors, tc.wantMsg) {
				t.Fatalf("Username(%q) errors %v missing %q", tc.username, res.Errors, tc.wantMsg)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("three of four classes passes", func(t *testing.T) {
		res := engine.Password("Abcdefg1")
		if !res.IsValid() {
			t.Fatalf("upper+lower+digit should pass: %v", res.Errors)
		}
	})
	t.Run("single class fails", func(t *testing.T) {
		res := engine.Password("abcdefgh")
		if res.IsValid() {
			t.Fatalf("lowercase-only password must fail")
		}
		if !containsSubstring(res.Errors, "at least 3 of") {
			t.Fatalf("expected class-count error, got %v", res.Errors)
		}
	})
	t.Run("length bounds", func(t *testing.T) {
		if res := engine.Password("Ab1!"); res.IsValid() {
			t.Fatalf("short password must fail")
		}
		if res := engine.Password("Ab1!" + strings.Repeat("x", 125)); res.IsValid() {
			t.Fatalf("overlong password must fail")
		}
		if res := engine.Password("Ab1!efgh"); !res.IsValid() {
			t.Fatalf("8-character password at min bound should pass: %v", res.Errors)
		}
	})
	t.Run("weak sequence warns without blocking", func(t *testing.T) {
		res := engine.Password("Qwerty12!")
		if !res.IsValid() {
			t.Fatalf("weak sequence must not block: %v", res.Errors)
		}
		if !containsSubstring(res.Warnings, "qwerty") {
			t.Fatalf("expected qwerty warning, got %v", res.Warnings)
		}
	})
	t.Run("repeated run warns", func(t *testing.T) {
		res := engine.Password("Abc1!dddd")
		if !res.IsValid() {
			t.Fatalf("repeated run must not block: %v", res.Errors)
		}
		if !containsSubstring(res.Warnings, "repeated") {
			t.Fatalf("expected repeated-run warning, got %v", res.Warnings)
		}
	})
	t.Run("three repeats do not warn", func(t *testing.T) {
		res := engine.Password("Abc1!ddd")
		if len(res.Warnings) != 0 {
			t.Fatalf("three repeats should not warn: %v", res.Warnings)
		}
	})
	t.Run("empty", func(t *testing.T) {
		if res := engine.Password(""); res.IsValid() {
			t.Fatalf("empty password must fail")
		}
	})
}

func TestPhone(t *testing.T) {
	engine := newTestEngine(t)
	cases := []struct {
		name   string
		number string
		valid  bool
	}{
		{"bare digits", "5551234567", true},
		{"formatted", "(555) 123-4567", true},
		{"international", "+1 555 123 4567", true},
		{"fifteen digits", "123456789012345", true},
		{"empty", "", false},
		{"too short", "555123456", false},
		{"too long", "1234567890123456", false},
		{"letters", "555-CALL-NOW", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := engine.Phone(tc.number)
			if res.IsValid() != tc.valid {
				t.Fatalf("Phone(%q) valid=%v, want %v (errors: %v)", tc.number, res.IsValid(), tc.valid, res.Errors)
			}
		})
	}
}

func TestCoordinates(t *testing.T) {
	engine := newTestEngine(t)

	if res := engine.Coordinates(45.5, -93.2); !res.IsValid() {
		t.Fatalf("in-range coordinates rejected: %v", res.Errors)
	}
	if res := engine.Coordinates(90, 180); !res.IsValid() {
		t.Fatalf("boundary coordinates rejected: %v", res.Errors)
	}
	if res := engine.Coordinates(-90, -180); !res.IsValid() {
		t.Fatalf("negative boundary coordinates rejected: %v", res.Errors)
	}
	if res := engine.Coordinates(90.1, 0); res.IsValid() {
		t.Fatalf("latitude out of range accepted")
	}
	if res := engine.Coordinates(0, -180.1); res.IsValid() {
		t.Fatalf("longitude out of range accepted")
	}

	res := engine.Coordinates(100, 200)
	if len(res.Errors) != 2 {
		t.Fatalf("both out-of-range axes must be reported independently, got %v", res.Errors)
	}
}

func containsSubstring(msgs []string, want string) bool {
	for _, msg := range msgs {
		if strings.Contains(msg, want) {
			return true
		}
	}
	return false
}
