package util

import (
	"testing"
	"time"
)

func TestStringToInt64(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"Simple", "42", 42, false},
		{"Zero", "0", 0, false},
		{"Negative", "-7", -7, false},
		{"Empty", "", 0, true},
		{"NotANumber", "abc", 0, true},
		{"Float", "1.5", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StringToInt64(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("StringToInt64(%q) expected error, got %d", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("StringToInt64(%q) returned error %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("StringToInt64(%q) = %d; want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-10-01")
	if err != nil {
		t.Fatalf("ParseDate returned error %v", err)
	}
	want := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v; want %v", got, want)
	}

	if _, err := ParseDate("01/10/2026"); err == nil {
		t.Error("ParseDate accepted a non-API date format")
	}
	if FormatDate(want) != "2026-10-01" {
		t.Errorf("FormatDate = %q", FormatDate(want))
	}
}

func TestValidEmail(t *testing.T) {
	if err := ValidEmail("alice@example.com"); err != nil {
		t.Errorf("ValidEmail rejected a valid address: %v", err)
	}
	if err := ValidEmail(""); err == nil {
		t.Error("ValidEmail accepted an empty address")
	}
	if err := ValidEmail("not-an-email"); err == nil {
		t.Error("ValidEmail accepted a malformed address")
	}
}

func TestValidateGroupForm(t *testing.T) {
	type form struct {
		Status string `validate:"groupstatus"`
		Date   string `validate:"apidate"`
	}

	valid := form{Status: "O", Date: "2026-10-01"}
	if err := ValidateStruct(valid); err != nil {
		t.Errorf("ValidateStruct rejected a valid form: %v", err)
	}

	badStatus := form{Status: "X", Date: "2026-10-01"}
	if err := ValidateStruct(badStatus); err == nil {
		t.Error("ValidateStruct accepted an unknown group status")
	}

	badDate := form{Status: "O", Date: "tomorrow"}
	if err := ValidateStruct(badDate); err == nil {
		t.Error("ValidateStruct accepted a malformed date")
	}
}
