package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CheckoutMetrics covers the checkout, reconciliation and export paths.
type CheckoutMetrics struct {
	CheckoutsCreatedTotal prometheus.CounterVec
	CheckoutErrorsTotal prometheus.CounterVec

	PaymentStatusUpdatesTotal prometheus.CounterVec

	BuyersExportedTotal prometheus.Counter

	GatewayRequestDuration prometheus.HistogramVec
}

func NewCheckoutMetrics() *CheckoutMetrics {
	return &CheckoutMetrics{
		CheckoutsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkouts_created_total",
				Help: "Total checkout preferences created",
			},
			[]string{"currency"},
		),

		CheckoutErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_errors_total",
				Help: "Checkout failures by stage (store, gateway)",
			},
			[]string{"stage"},
		),

		PaymentStatusUpdatesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_status_updates_total",
				Help: "Webhook status reconciliations by resulting status",
			},
			[]string{"status"},
		),

		BuyersExportedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "buyers_exported_total",
				Help: "Buyer rows written by the CSV export",
			},
		),

		GatewayRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "gateway_request_duration_seconds",
				Help: "MercadoPago API call duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}
