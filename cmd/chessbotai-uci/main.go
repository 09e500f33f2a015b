package main

import (
	"flag"
	"log"
	"os"

	"github.com/amiit04/ChessBotAI/internal/engine"
	"github.com/amiit04/ChessBotAI/internal/uci"
)

var depth = flag.Int("depth", 3, "search depth in plies")

func main() {
	flag.Parse()

	eng, err := engine.New(*depth)
	if err != nil {
		log.Fatalf("invalid -depth %d: %v", *depth, err)
	}

	uci.New(eng).Run(os.Stdin, os.Stdout)
}
