package main

import (
	"github.com/paramp07/Nutritrack/config"
	"github.com/paramp07/Nutritrack/routes"
)

func main() {
	cfg := config.Load()
	db := config.InitDB()
	r := routes.SetupRouter(db, cfg)
	r.Run(":" + cfg.Port)
}
