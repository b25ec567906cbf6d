package runtime

import (
	"errors"
	"strings"
	"testing"
)

func TestLookup_Espruino(t *testing.T) {
	rt, err := Lookup("espruino")
	if err != nil {
		t.Fatalf("Lookup(\"espruino\") error: %v", err)
	}
	if rt.Version != "1.86" {
		t.Errorf("Version = %q, want %q", rt.Version, "1.86")
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("micropython")
	if err == nil {
		t.Fatal("expected error for unknown runtime")
	}
	if !errors.Is(err, ErrUnknownRuntime) {
		t.Errorf("expected ErrUnknownRuntime, got %v", err)
	}
	if !strings.Contains(err.Error(), "espruino") {
		t.Errorf("error should list supported runtimes, got: %v", err)
	}
}

func TestDefault(t *testing.T) {
	if got := Default(); got.Name != DefaultName {
		t.Errorf("Default().Name = %q, want %q", got.Name, DefaultName)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 || names[0] != "espruino" {
		t.Errorf("Names() = %v, want [espruino ...]", names)
	}
}

func TestString(t *testing.T) {
	if got := (Runtime{Name: "espruino", Version: "1.86"}).String(); got != "espruino@1.86" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseRegistry(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"valid", "runtimes:\n  - name: a\n    version: \"1.2\"\n", ""},
		{"bad version", "runtimes:\n  - name: a\n    version: latest\n", "invalid version"},
		{"empty name", "runtimes:\n  - version: \"1.0\"\n", "empty name"},
		{"duplicate", "runtimes:\n  - name: a\n    version: \"1.0\"\n  - name: a\n    version: \"2.0\"\n", "duplicate"},
		{"not yaml", "runtimes: [", "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRegistry([]byte(tt.doc))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
