package main

import (
	"log"

	"github.com/qrforms/qrforms/cmd/app"
	"github.com/qrforms/qrforms/internal/adapters/config"
	setupHTTP "github.com/qrforms/qrforms/internal/adapters/controller/http/setup"
)

func main() {
	cfg := config.Get()
	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	setupHTTP.Setup(a)

	a.Start()
}
