package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"gittree/internal/cmd"
	"gittree/internal/config"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli, cmd.Options()...)

	if err := ctx.Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
