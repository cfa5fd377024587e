package main

import (
	log "github.com/sirupsen/logrus"

	"steamlet.dev/launcher/internal/cmd"
)

func main() {
	// Quiet until the configured level is known.
	log.SetLevel(log.ErrorLevel)
	cmd.Execute()
}
