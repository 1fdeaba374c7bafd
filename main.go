package main

import (
	"github.com/mj1618/desktopctl/cmd"
	_ "github.com/mj1618/desktopctl/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
