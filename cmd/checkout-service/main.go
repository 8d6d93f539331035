package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/entradasya/checkout-service/internal/app/setup"
	"github.com/entradasya/checkout-service/internal/delivery/http/handlers"
	"github.com/entradasya/checkout-service/internal/delivery/http/middleware"
	"github.com/entradasya/checkout-service/internal/domain"
	"github.com/entradasya/checkout-service/internal/usecase"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v\n", err)
	}
	cfg := deps.Config

	// Init checkout usecase
	uc := usecase.NewDefaultCheckoutUsecase(
		deps.BuyerRepo,
		deps.Gateway,
		deps.Exporter,
		deps.PaymentPublisher,
		deps.EventLogger,
		deps.Metrics,
		usecase.CheckoutSettings{
			UnitPrice: cfg.MercadoPago.UnitPrice,
			CurrencyID: cfg.MercadoPago.CurrencyID,
			NotificationURL: cfg.MercadoPago.NotificationURL,
			BackURLs: domain.BackURLs{
				Success: cfg.MercadoPago.SuccessURL,
				Failure: cfg.MercadoPago.FailureURL,
				Pending: cfg.MercadoPago.PendingURL,
			},
			PaymentTopic: cfg.KafkaService.PaymentTopic,
		},
	)

	checkoutHandler := handlers.NewCheckoutHandler(uc)
	statusHandler := handlers.NewStatusHandler(uc)
	exportHandler := handlers.NewExportHandler(uc)

	mux := http.NewServeMux()
	mux.HandleFunc("/create_preference", checkoutHandler.CreatePreference)
	mux.HandleFunc("/update_status", statusHandler.UpdateStatus)
	mux.HandleFunc("/buyers", exportHandler.DownloadBuyers)
	mux.HandleFunc("/healthz", handlers.Health)
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr: fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: middleware.CORS(mux),
	}

	go func() {
		log.Printf("checkout service listening on %s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v\n", err)
	}
}
