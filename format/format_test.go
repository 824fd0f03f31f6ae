package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(toml) error = %v", err)
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil {
		t.Fatal(err)
	}
	if !f.IsYAML() || f.IsJSON() || f.String() != "yaml" {
		t.Errorf("unmarshalled %v", f)
	}
	if _, err := Format(7).MarshalText(); err == nil {
		t.Errorf("expected an error for an unknown format")
	}
}
