/*
Copyright © 2025 Wrike Inc.
*/
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/wrike/promabbix/cmd"
)

func main() {
	// Keep the default logger on stderr so STDOUT stays clean for
	// generated templates.
	log.SetOutput(os.Stderr)

	// Only log the warning severity or above.
	log.SetLevel(log.WarnLevel)

	cmd.Execute()
}
