package main

import (
	"log"

	"github.com/figliolo/bar-client/config"
	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/scheduler"
	"github.com/figliolo/bar-client/services"
	"github.com/figliolo/bar-client/stores"
)

func main() {
	// Basic logging
	log.Println("Starting bar client gateway...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the on-device store for carts and the shift selection
	db, err := config.ConnectLocalStore(cfg.LocalDBPath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	if err := db.AutoMigrate(&models.CartLine{}, &models.Preference{}); err != nil {
		log.Fatalf("Failed to migrate local store: %v", err)
	}
	log.Println("Local store migration completed successfully")

	// One client owns the session cookie jar for the whole process
	client := services.NewClient(cfg)

	turni := stores.NewTurnoStore(client, db)
	if !turni.FetchTurni() {
		log.Printf("Initial shift fetch failed: %s", turni.Error())
	}
	turni.RevalidateSelection()

	auth := stores.NewAuthStore(client)
	carts := stores.NewCartStore(client, db, turni)
	products := stores.NewProductsStore(client)
	orders := stores.NewOrdersStore(client, cfg.ProfTurno)
	classCarts := stores.NewClassCartStore(client, turni)
	qrs := stores.NewQRStore(client, turni)
	gestioni := stores.NewGestioniStore(client)

	// Refresh the registry at midnight so stale selections are reset
	cronJobs := scheduler.Start(turni)
	defer cronJobs.Stop()

	router := setupRouter(cfg, turni, auth, carts, products, orders, classCarts, qrs, gestioni)

	addr := ":" + cfg.Port
	log.Printf("Gateway is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start gateway: %v", err)
	}
}
