// Package manifest keeps the "icons" member of a web app manifest in sync
// with the generated PNGs.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"pwa-icons/internal/sizes"
)

// Icon is one entry of the manifest "icons" array.
type Icon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// Icons lists the manifest entries for specs served from dir. Apple touch
// icons and tiny favicons are left to the HTML head.
func Icons(dir string, specs []sizes.Spec) []Icon {
	var icons []Icon
	for _, s := range specs {
		if s.Width < 144 || s.Name == "apple-touch-icon.png" {
			continue
		}
		icon := Icon{
			Src:   path.Join(dir, s.Name),
			Sizes: s.Dimensions(),
			Type:  "image/png",
		}
		if s.Width >= 192 {
			icon.Purpose = "any"
		}
		icons = append(icons, icon)
	}
	return icons
}

// UpdateIcons rewrites the "icons" array of the manifest at file. Every other
// member is preserved; key order follows encoding/json's sorted output.
func UpdateIcons(file, dir string, specs []sizes.Spec) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var manifest map[string]interface{}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("invalid manifest %s: %w", file, err)
	}

	icons := Icons(dir, specs)
	if len(icons) == 0 {
		return fmt.Errorf("no sizes suitable for %s", file)
	}
	manifest["icons"] = icons

	newData, err := json.MarshalIndent(manifest, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, append(newData, '\n'), 0644)
}
