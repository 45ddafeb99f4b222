package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateManager(t *testing.T) {
	dir := t.TempDir()
	orig := *storeDir
	*storeDir = dir
	defer func() { *storeDir = orig }()

	// Without a manager list, any non-empty name is accepted.
	if err := ValidateManager("Ada"); err != nil {
		t.Errorf("ValidateManager without list = %v, want nil", err)
	}
	if err := ValidateManager("  "); err == nil {
		t.Error("ValidateManager with a blank name must fail")
	}

	list := filepath.Join(dir, managersFile)
	if err := os.WriteFile(list, []byte("Ada\nGrace\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "Ada"},
		{name: "grace"}, // case-insensitive
		{name: "Mallory", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tc := range tests {
		err := ValidateManager(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateManager(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
