package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/earthboundkid/versioninfo/v2"
)

// Version describes the build for the --version flag.
func Version() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version: %s\n", versioninfo.Version)
	fmt.Fprintf(&b, "Revision: %s\n", versioninfo.Revision)
	if versioninfo.Revision != "unknown" {
		fmt.Fprintf(&b, "Committed: %s\n", versioninfo.LastCommit.Format(time.RFC1123))
		if versioninfo.DirtyBuild {
			b.WriteString("Dirty Build\n")
		}
	}
	return b.String()
}
