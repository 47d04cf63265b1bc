//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package ui

func IsTerminal(fd uintptr) bool {
	return false
}
