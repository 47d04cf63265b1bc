package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const logoSVG = `<svg width="512" height="512" viewBox="0 0 512 512" xmlns="http://www.w3.org/2000/svg">
  <circle cx="256" cy="256" r="240" fill="#4a6fa5"/>
</svg>`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNoToolsStillExitsCleanly(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("expected success without converters: %v", err)
	}
	if got := strings.Count(out, "[WARNING] Could not create icons"); got != 9 {
		t.Fatalf("expected one warning per size, got %d:\n%s", got, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "logo_no_text.svg")); err != nil {
		t.Fatalf("logo_no_text.svg not written: %v", err)
	}
}

func TestConfigFileSelectsConverters(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile("logo.svg", []byte(logoSVG), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("pwa-icons.yaml", []byte("primary: oksvg\nfallback: none\noutput: public/icons\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--print-markup")
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if strings.Contains(out, "[WARNING]") {
		t.Fatalf("unexpected warnings:\n%s", out)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "public", "icons"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 9 {
		t.Fatalf("expected 9 icons, got %d", len(entries))
	}
	if _, err := os.Stat(filepath.Join(dir, "favicon.ico")); err != nil {
		t.Fatalf("favicon.ico not written: %v", err)
	}
	if !strings.Contains(out, `href="public/icons/apple-touch-icon.png"`) {
		t.Fatalf("markup missing:\n%s", out)
	}
}

func TestUnknownConverterFails(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := execute(t, "--primary", "inkscape"); err == nil {
		t.Fatal("expected configuration error")
	}
}
