package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"autocars/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a KEY = value tuning file (defaults built in)")
	seedFlag := flag.Uint64("seed", 0, "simulation seed (0 = clock, AUTOCARS_SEED overrides)")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = game.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "autocars: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "autocars: invalid config: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if s := os.Getenv("AUTOCARS_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	game.RunDesktop(cfg, seed)
}
