package main

import (
	cmd "github.com/piiscope/piiscope/cmd/piiscope"
	"github.com/piiscope/piiscope/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting piiscope")
	cmd.Execute()
}
