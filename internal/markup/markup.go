// Package markup renders the HTML <head> snippet that references generated icons.
package markup

import (
	"path"
	"strings"
	"text/template"

	"pwa-icons/internal/sizes"
)

const (
	DefaultThemeColor = "#2c3e50"
	AppleTouchIcon    = "apple-touch-icon.png"
)

type link struct {
	Rel  string
	Type string
	Size string
	Href string
}

type head struct {
	Title      string
	Links      []link
	ThemeColor string
}

var headTmpl = template.Must(template.New("head").Parse(`<!-- {{.Title}} -->
{{range .Links}}<link rel="{{.Rel}}"{{if .Type}} type="{{.Type}}"{{end}}{{if .Size}} sizes="{{.Size}}"{{end}} href="{{.Href}}">
{{end}}{{if .ThemeColor}}<meta name="theme-color" content="{{.ThemeColor}}">
{{end}}`))

func render(h head) string {
	var b strings.Builder
	// The template is fixed and the data is plain strings.
	if err := headTmpl.Execute(&b, h); err != nil {
		panic(err)
	}
	return b.String()
}

// FaviconHead links the .ico, every favicon PNG up to 192px, and the apple
// touch icon. dir is the URL path the icons are served from.
func FaviconHead(dir, ico string, specs []sizes.Spec, themeColor string) string {
	h := head{Title: "Favicons", ThemeColor: themeColor}
	if ico != "" {
		h.Links = append(h.Links, link{Rel: "icon", Type: "image/x-icon", Href: path.Join(dir, ico)})
	}

	var apple *sizes.Spec
	for i, s := range specs {
		switch {
		case s.Name == AppleTouchIcon:
			apple = &specs[i]
		case s.Width <= 192 && strings.HasPrefix(s.Name, "favicon-"):
			h.Links = append(h.Links, link{Rel: "icon", Type: "image/png", Size: s.Dimensions(), Href: path.Join(dir, s.Name)})
		}
	}
	if apple != nil {
		h.Links = append(h.Links, link{Rel: "apple-touch-icon", Size: apple.Dimensions(), Href: path.Join(dir, apple.Name)})
	}
	return render(h)
}

// PWAHead links the favicon PNGs and every Apple touch size of a PWA icon set.
// icoHref is used as-is when set, since the PWA .ico lives outside dir.
func PWAHead(dir, icoHref string, specs []sizes.Spec) string {
	h := head{Title: "PWA icons"}
	if icoHref != "" {
		h.Links = append(h.Links, link{Rel: "icon", Type: "image/x-icon", Href: icoHref})
	}
	for _, s := range specs {
		href := path.Join(dir, s.Name)
		switch {
		case strings.HasPrefix(s.Name, "favicon-"):
			h.Links = append(h.Links, link{Rel: "icon", Type: "image/png", Size: s.Dimensions(), Href: href})
		case s.Name == AppleTouchIcon || s.Width < 192:
			h.Links = append(h.Links, link{Rel: "apple-touch-icon", Size: s.Dimensions(), Href: href})
		}
	}
	return render(h)
}
