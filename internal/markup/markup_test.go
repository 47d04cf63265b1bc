package markup

import (
	"strings"
	"testing"

	"pwa-icons/internal/sizes"
)

func TestFaviconHead(t *testing.T) {
	got := FaviconHead("icons", "favicon.ico", sizes.Favicons, DefaultThemeColor)

	want := `<!-- Favicons -->
<link rel="icon" type="image/x-icon" href="icons/favicon.ico">
<link rel="icon" type="image/png" sizes="16x16" href="icons/favicon-16.png">
<link rel="icon" type="image/png" sizes="32x32" href="icons/favicon-32.png">
<link rel="icon" type="image/png" sizes="48x48" href="icons/favicon-48.png">
<link rel="icon" type="image/png" sizes="64x64" href="icons/favicon-64.png">
<link rel="icon" type="image/png" sizes="96x96" href="icons/favicon-96.png">
<link rel="icon" type="image/png" sizes="128x128" href="icons/favicon-128.png">
<link rel="icon" type="image/png" sizes="192x192" href="icons/favicon-192.png">
<link rel="apple-touch-icon" sizes="180x180" href="icons/apple-touch-icon.png">
<meta name="theme-color" content="#2c3e50">
`
	if got != want {
		t.Fatalf("unexpected markup:\n%s\nwant:\n%s", got, want)
	}
}

func TestFaviconHeadWithoutThemeColor(t *testing.T) {
	got := FaviconHead("/static", "", sizes.Favicons[:1], "")
	if strings.Contains(got, "theme-color") || strings.Contains(got, "x-icon") {
		t.Fatalf("unexpected optional lines:\n%s", got)
	}
	if !strings.Contains(got, `href="/static/favicon-16.png"`) {
		t.Fatalf("missing favicon link:\n%s", got)
	}
}

func TestPWAHead(t *testing.T) {
	got := PWAHead("icons", "favicon.ico", sizes.PWAIcons)

	for _, line := range []string{
		`<link rel="icon" type="image/x-icon" href="favicon.ico">`,
		`<link rel="icon" type="image/png" sizes="32x32" href="icons/favicon-32.png">`,
		`<link rel="apple-touch-icon" sizes="180x180" href="icons/apple-touch-icon.png">`,
		`<link rel="apple-touch-icon" sizes="167x167" href="icons/icon-167.png">`,
		`<link rel="apple-touch-icon" sizes="120x120" href="icons/icon-120.png">`,
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %s in:\n%s", line, got)
		}
	}
	if strings.Contains(got, "icon-512.png") {
		t.Errorf("manifest-only sizes belong in the web manifest:\n%s", got)
	}
}
