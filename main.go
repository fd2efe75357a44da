package main

import (
	"errors"
	"os"

	"github.com/antennaops/trackcheck/app"
	"github.com/antennaops/trackcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, app.ErrInvalidSchedule) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
