package main

import (
	"fmt"
	"os"

	"github.com/hardknott/shortbus/monitor"
)

func main() {
	if err := monitor.Launch(os.Args[1:]); err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(1)
	}
}
