package main

import (
	"os"

	"pwa-icons/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.ForWriter(os.Stderr, false).Error(err.Error())
		os.Exit(1)
	}
}
