package main

import (
	"os"

	"github.com/BishwashGurung/GCM/internal/commands"
	"github.com/BishwashGurung/GCM/internal/platform"
)

func main() {
	os.Exit(commands.Run(os.Args[1:], os.Stdout, os.Stderr, platform.NewOS()))
}
