package main

import (
	"os"

	"github.com/Snider/gressbar/cmd"
	"github.com/Snider/gressbar/pkg/logger"
)

var osExit = os.Exit

func main() {
	Main()
}

func Main() {
	log := logger.New(os.Stderr, false)
	if err := cmd.Execute(log); err != nil {
		log.Error("fatal error", "err", err)
		osExit(1)
	}
}
