//go:build windows

package ui

import "golang.org/x/sys/windows"

// IsTerminal reports whether fd refers to a console. Windows 10+ consoles
// render ANSI colours once virtual terminal processing is enabled.
func IsTerminal(fd uintptr) bool {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(fd), &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING == 0 {
		if err := windows.SetConsoleMode(windows.Handle(fd), mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
			return false
		}
	}
	return true
}
