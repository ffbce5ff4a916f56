package main

import (
	"errors"
	"os"

	"github.com/thenoetrevino/dragboard/cmd"
	"github.com/thenoetrevino/dragboard/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var coded *cli.ExitCodeError
		if errors.As(err, &coded) {
			os.Exit(coded.Code)
		}
		os.Exit(cli.ExitError)
	}
}
