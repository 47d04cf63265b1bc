package sizes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltInLists(t *testing.T) {
	if len(PWAIcons) != 9 {
		t.Errorf("expected 9 PWA icons, got %d", len(PWAIcons))
	}
	if len(Favicons) != 10 {
		t.Errorf("expected 10 favicons, got %d", len(Favicons))
	}
	if err := ValidateAll(PWAIcons); err != nil {
		t.Errorf("PWAIcons: %v", err)
	}
	if err := ValidateAll(Favicons); err != nil {
		t.Errorf("Favicons: %v", err)
	}

	ico, err := Pick(Favicons, FaviconICO...)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []int{16, 32, 48} {
		if ico[i].Width != want {
			t.Errorf("ico entry %d: expected %dpx, got %dpx", i, want, ico[i].Width)
		}
	}
	if _, err := Pick(PWAIcons, PWAFaviconICO...); err != nil {
		t.Errorf("PWAFaviconICO: %v", err)
	}
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr string
	}{
		{"ok", Spec{16, 16, "a.png"}, ""},
		{"zero width", Spec{0, 16, "a.png"}, "positive"},
		{"negative height", Spec{16, -1, "a.png"}, "positive"},
		{"empty name", Spec{16, 16, ""}, "empty"},
		{"path", Spec{16, 16, "sub/a.png"}, "plain file name"},
		{"dotdot", Spec{16, 16, ".."}, "plain file name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateAllRejectsDuplicates(t *testing.T) {
	err := ValidateAll([]Spec{{16, 16, "a.png"}, {32, 32, "a.png"}})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := ValidateAll(nil); err == nil {
		t.Fatal("expected error for empty list")
	}
}

func TestPickUnknown(t *testing.T) {
	if _, err := Pick(Favicons, "nope.png"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "sizes.yaml")
	content := `
- {width: 64, height: 64, name: icon-64.png}
- width: 310
  height: 150
  name: wide.png
`
	if err := os.WriteFile(good, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	specs, err := LoadFile(good)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := []Spec{{64, 64, "icon-64.png"}, {310, 150, "wide.png"}}
	if len(specs) != len(want) {
		t.Fatalf("expected %d specs, got %d", len(want), len(specs))
	}
	for i := range want {
		if specs[i] != want[i] {
			t.Errorf("entry %d: expected %v, got %v", i, want[i], specs[i])
		}
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("- {width: 0, height: 4, name: x.png}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Fatal("expected validation error")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}
