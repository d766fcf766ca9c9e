package main

import (
	"log"

	"github.com/VishalKR1202/ChukGO1/config"
	"github.com/VishalKR1202/ChukGO1/internal/appServer"
)

func main() {

	cfgFile, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("LoadConfig: %v", err)
	}

	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("ParseConfig: %v", err)
	}

	appServer.NewServer(cfg)
}
