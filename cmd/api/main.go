package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mini-crm/crm-backend/api/routes"
	"github.com/mini-crm/crm-backend/internal/config"
	"github.com/mini-crm/crm-backend/internal/delivery"
	"github.com/mini-crm/crm-backend/internal/handlers"
	mongorepo "github.com/mini-crm/crm-backend/internal/repositories/mongodb"
	"github.com/mini-crm/crm-backend/internal/services"
	"github.com/mini-crm/crm-backend/pkg/mongodb"
	"github.com/mini-crm/crm-backend/pkg/msggateway"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	campaignRepo := mongorepo.NewCampaignRepository(db)
	customerRepo := mongorepo.NewCustomerRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	segmentRepo := mongorepo.NewSegmentRepository(db)
	logRepo := mongorepo.NewCommunicationLogRepository(db)
	userRepo := mongorepo.NewUserRepository(db)

	// Vendor gateway and background delivery workers
	gateway := msggateway.NewMockGateway(cfg.Gateway.SuccessRate)
	simulator := delivery.NewSimulator(campaignRepo, customerRepo, logRepo, gateway)
	dispatcher := delivery.NewDispatcher(simulator, cfg.Delivery.Workers, cfg.Delivery.QueueSize)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	campaignService := services.NewCampaignService(campaignRepo, dispatcher)
	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo)
	segmentService := services.NewSegmentService(segmentRepo, customerRepo)
	analyticsService := services.NewAnalyticsService(campaignRepo, customerRepo, segmentRepo)
	receiptService := services.NewReceiptService(logRepo)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:      handlers.NewAuthHandler(authService),
		CampaignHandler:  handlers.NewCampaignHandler(campaignService),
		CustomerHandler:  handlers.NewCustomerHandler(customerService),
		OrderHandler:     handlers.NewOrderHandler(orderService),
		SegmentHandler:   handlers.NewSegmentHandler(segmentService),
		AIHandler:        handlers.NewAIHandler(),
		AnalyticsHandler: handlers.NewAnalyticsHandler(analyticsService),
		DeliveryHandler:  handlers.NewDeliveryHandler(receiptService, gateway),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	// Let in-flight delivery simulations finish before dropping the DB connection
	dispatcher.Stop()

	log.Println("Server exiting")
}
