// Command gowm is a tiling window manager for X11.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const version = "gowm-1.0"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	installSignalHandlers()

	cfg := DefaultConfig()
	wm, err := newWM(cfg, noopBarRenderer{})
	if err != nil {
		log.Fatalf("gowm: %v", err)
	}

	wm.scan()
	wm.run()
	wm.cleanup()
}
