package main

import (
	"os"

	"github.com/coop-app/themekit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
