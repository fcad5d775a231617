package main

import (
	"log"

	"go.uber.org/zap"

	"hashicon/internal/app"
	"hashicon/internal/server"
)

func main() {
	cfg, err := app.Load()
	if err != nil {
		log.Fatal(err)
	}
	wire, err := app.NewWire(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer wire.Log.Sync()

	srv := server.New(wire.Icons, wire.Sizes, wire.Log)
	wire.Log.Info("iconserver listening", zap.String("addr", cfg.Addr))
	if err := srv.Run(cfg.Addr); err != nil {
		wire.Log.Fatal("server stopped", zap.Error(err))
	}
}
