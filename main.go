package main

import (
	"os"

	"github.com/maxkimambo/tasks/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
