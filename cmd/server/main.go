package main

import (
	"log"
	"net/http"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/api"
	"github.com/Jalesh-poop/HotWheels-Backend/internal/config"
	"github.com/Jalesh-poop/HotWheels-Backend/internal/ebay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	provider := ebay.NewProvider(ebay.Config{
		AppID:   cfg.Ebay.AppID,
		BaseURL: cfg.Ebay.BaseURL,
		Timeout: cfg.Ebay.Timeout,
	})

	router := api.NewRouter(provider, api.RouterConfig{
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server running on :%s", cfg.Server.Port)
	log.Fatal(server.ListenAndServe())
}
