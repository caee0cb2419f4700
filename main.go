package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"tastyeats/configs"
	"tastyeats/controllers"
	"tastyeats/pkg/events"
	"tastyeats/pkg/kv"
	"tastyeats/repository"
	"tastyeats/routes"
	"tastyeats/services"
	"tastyeats/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Cart storage
	var store kv.Store
	switch cfg.CartStorage {
	case "redis":
		store = kv.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	default:
		fileStore, err := kv.NewFileStore(cfg.CartDir)
		if err != nil {
			log.Fatalf("cart storage failed: %v", err)
		}
		store = fileStore
	}

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Catalog cache: fetch now, keep refreshing in the background.
	catalogSvc := services.NewCatalogService(menuRepo)
	if err := catalogSvc.Refresh(); err != nil {
		log.Printf("initial catalog fetch failed, serving empty catalog: %v", err)
	}
	go catalogSvc.RefreshLoop(cfg.CatalogRefresh)

	// Kitchen feed
	kitchenHub := ws.NewKitchenHub()
	go kitchenHub.Run()

	// Optional order event stream
	var publisher services.EventPublisher
	if cfg.KafkaBroker != "" {
		kafkaPub := events.NewOrderPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		defer kafkaPub.Close()
		publisher = kafkaPub
	}

	// Services
	cartSvc := services.NewCartService(store)
	menuSvc := services.NewMenuService(menuRepo, catalogSvc)
	customerSvc := services.NewCustomerService(customerRepo)
	orderSvc := services.NewOrderService(orderRepo, kitchenHub, publisher)
	checkoutSvc := services.NewCheckoutService(cartSvc, catalogSvc, customerSvc, orderSvc)

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, routes.Controllers{
		Menu:     controllers.NewMenuController(menuSvc),
		Cart:     controllers.NewCartController(cartSvc, catalogSvc),
		Checkout: controllers.NewCheckoutController(checkoutSvc, cfg.TokenSecret, cfg.TokenTTL, cfg.UPIID, cfg.UPIPayee),
		Customer: controllers.NewCustomerController(customerSvc, cfg.TokenSecret, cfg.TokenTTL),
		Order:    controllers.NewOrderController(orderSvc),
		Kitchen:  kitchenHub,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
