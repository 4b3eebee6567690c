package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/uniex/uniex/pkg/cmd"

	_ "github.com/uniex/uniex/pkg/exchange/binance"
	_ "github.com/uniex/uniex/pkg/exchange/max"
)

func main() {
	if _, err := os.Stat(".env.local"); err == nil {
		if err := godotenv.Load(".env.local"); err != nil {
			log.WithError(err).Fatal("failed to load .env.local")
		}
	}

	cmd.Execute()
}
