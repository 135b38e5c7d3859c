package main

import (
	"fmt"
	"os"
	"os/signal"

	"ghpurge/internal/cmd"
)

func main() {
	// An interrupt during an interactive session is an expected way out:
	// print a notice and exit with a success status.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Println("\n\nOperation cancelled by user. Exiting...")
		os.Exit(0)
	}()

	cmd.Execute()
}
