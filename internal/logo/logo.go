package logo

import (
	_ "embed"
	"os"
)

// NoText is the logo without its wordmark, used for icons too small for the
// lettering to stay legible.
//
//go:embed logo_no_text.svg
var NoText []byte

const NoTextFile = "logo_no_text.svg"

// WriteNoText writes NoText to path, replacing any previous copy.
func WriteNoText(path string) error {
	return os.WriteFile(path, NoText, 0644)
}
