package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/entradasya/checkout-service/internal/domain"
	publisher "github.com/entradasya/checkout-service/internal/infrastructure/kafka"
	"github.com/entradasya/checkout-service/internal/infrastructure/logger"
	"github.com/entradasya/checkout-service/internal/infrastructure/metrics"
	checkoutdto "github.com/entradasya/checkout-service/internal/usecase/dto/checkout"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// prometheus collectors register once per process
var testMetrics = metrics.NewCheckoutMetrics()

// Mock BuyerRepository
type mockBuyerRepo struct {
	mu 			sync.Mutex
	buyers 		map[string]*domain.Buyer
	insertOrder []string
	createErr 	error
	updateCalls int
}

func newMockBuyerRepo() *mockBuyerRepo {
	return &mockBuyerRepo{buyers: make(map[string]*domain.Buyer)}
}

func (m *mockBuyerRepo) CreateBuyer(buyer *domain.Buyer) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return "", m.createErr
	}
	id := uuid.New().String()
	stored := *buyer
	stored.ID = id
	m.buyers[id] = &stored
	m.insertOrder = append(m.insertOrder, id)
	buyer.ID = id
	return id, nil
}

func (m *mockBuyerRepo) UpdateBuyerStatus(buyerID string, newStatus domain.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.updateCalls++
	if buyer, ok := m.buyers[buyerID]; ok {
		buyer.Status = newStatus
	}
	return nil
}

func (m *mockBuyerRepo) GetAllBuyers() ([]*domain.Buyer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buyers := make([]*domain.Buyer, 0, len(m.insertOrder))
	for _, id := range m.insertOrder {
		buyers = append(buyers, m.buyers[id])
	}
	return buyers, nil
}

// Mock PaymentGateway
type mockGateway struct {
	lastPreference *domain.PreferenceRequest
	preference 	   *domain.Preference
	createErr 	   error
	payment 	   *domain.Payment
	paymentErr 	   error
}

func (m *mockGateway) CreatePreference(request *domain.PreferenceRequest) (*domain.Preference, error) {
	m.lastPreference = request
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.preference, nil
}

func (m *mockGateway) GetPayment(paymentID string) (*domain.Payment, error) {
	if m.paymentErr != nil {
		return nil, m.paymentErr
	}
	return m.payment, nil
}

// Mock publisher and event logger
type mockPublisher struct {
	mu 	   sync.Mutex
	events []publisher.PaymentEvent
}

func (m *mockPublisher) Publish(topic string, msgs ...domain.Message) error {
	return nil
}

func (m *mockPublisher) PublishPayment(topic string, event publisher.PaymentEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

type mockEventLogger struct {
	mu 	    sync.Mutex
	created []logger.CheckoutCreatedEvent
	failed  []logger.CheckoutFailedEvent
}

func (m *mockEventLogger) LogCheckoutCreated(ctx context.Context, event logger.CheckoutCreatedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, event)
	return nil
}

func (m *mockEventLogger) LogCheckoutFailed(ctx context.Context, event logger.CheckoutFailedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = append(m.failed, event)
	return nil
}

type mockExporter struct {
	path 	  string
	exportErr error
	exported  []*domain.Buyer
}

func (m *mockExporter) Export(buyers []*domain.Buyer) (string, error) {
	if m.exportErr != nil {
		return "", m.exportErr
	}
	m.exported = buyers
	return m.path, nil
}

func testSettings() CheckoutSettings {
	return CheckoutSettings{
		UnitPrice: 8000,
		CurrencyID: "ARS",
		NotificationURL: "http://localhost:3000/update_status",
		BackURLs: domain.BackURLs{
			Success: "http://localhost:4000/",
			Failure: "http://localhost:4000/",
			Pending: "http://localhost:4000/",
		},
		PaymentTopic: "payment-events",
	}
}

func newTestUsecase(repo *mockBuyerRepo, gateway *mockGateway, exporter *mockExporter) *DefaultCheckoutUsecase {
	if exporter == nil {
		exporter = &mockExporter{path: "buyers.csv"}
	}
	return NewDefaultCheckoutUsecase(repo, gateway, exporter, &mockPublisher{}, &mockEventLogger{}, testMetrics, testSettings())
}

func TestCreateCheckout_StoresDerivedQuantity(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{preference: &domain.Preference{ID: "pref-1", InitPoint: "https://mp.example/init"}}
	uc := newTestUsecase(repo, gateway, nil)

	output, err := uc.CreateCheckout(&checkoutdto.CreateCheckoutInput{
		Title: "Entrada general",
		Quantity: 3,
		Price: 16000,
		FirstName: "Ana",
		LastName: "Gomez",
		Email: "ana@example.com",
		PhoneNumber: "1144556677",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if output.RedirectURL != "https://mp.example/init" {
		t.Errorf("expected redirect URL from gateway, got %q", output.RedirectURL)
	}

	buyers, _ := repo.GetAllBuyers()
	if len(buyers) != 1 {
		t.Fatalf("expected 1 buyer stored, got %d", len(buyers))
	}
	// floor(16000 / 8000) = 2, caller quantity ignored for storage
	if buyers[0].Quantity != 2 {
		t.Errorf("expected stored quantity 2, got %d", buyers[0].Quantity)
	}
	// caller values go to the gateway verbatim
	item := gateway.lastPreference.Items[0]
	if item.Quantity != 3 {
		t.Errorf("expected gateway item quantity 3, got %d", item.Quantity)
	}
	if item.UnitPrice != 16000 {
		t.Errorf("expected gateway unit price 16000, got %f", item.UnitPrice)
	}
	if item.CurrencyID != "ARS" {
		t.Errorf("expected currency ARS, got %q", item.CurrencyID)
	}
}

func TestCreateCheckout_ExternalReferenceMatchesBuyerID(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{preference: &domain.Preference{ID: "pref-1", InitPoint: "https://mp.example/init"}}
	uc := newTestUsecase(repo, gateway, nil)

	output, err := uc.CreateCheckout(&checkoutdto.CreateCheckoutInput{Title: "Entrada", Quantity: 1, Price: 8000})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if gateway.lastPreference.ExternalReference != output.BuyerID {
		t.Errorf("external reference %q does not match buyer ID %q", gateway.lastPreference.ExternalReference, output.BuyerID)
	}
	if _, err := uuid.Parse(gateway.lastPreference.ExternalReference); err != nil {
		t.Errorf("external reference is not a parseable uuid: %v", err)
	}
}

func TestCreateCheckout_GatewayFailureLeavesBuyerStored(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{createErr: &domain.GatewayError{StatusCode: 500, Message: "upstream down"}}
	uc := newTestUsecase(repo, gateway, nil)

	_, err := uc.CreateCheckout(&checkoutdto.CreateCheckoutInput{Title: "Entrada", Quantity: 1, Price: 8000})
	if err == nil {
		t.Fatal("expected error from gateway failure")
	}

	// no rollback: the orphan record stays
	buyers, _ := repo.GetAllBuyers()
	if len(buyers) != 1 {
		t.Errorf("expected orphan buyer to remain stored, got %d buyers", len(buyers))
	}
	if buyers[0].Status != "" {
		t.Errorf("expected orphan buyer with empty status, got %q", buyers[0].Status)
	}
}

func TestCreateCheckout_StoreFailure(t *testing.T) {
	repo := newMockBuyerRepo()
	repo.createErr = errors.New("connection refused")
	gateway := &mockGateway{preference: &domain.Preference{ID: "pref-1"}}
	uc := newTestUsecase(repo, gateway, nil)

	_, err := uc.CreateCheckout(&checkoutdto.CreateCheckoutInput{Title: "Entrada", Quantity: 1, Price: 8000})
	if !errors.Is(err, domain.ErrCreateBuyer) {
		t.Errorf("expected ErrCreateBuyer, got: %v", err)
	}
	if gateway.lastPreference != nil {
		t.Error("gateway must not be called when the insert fails")
	}
}

func TestReconcileStatus_UpdatesMatchingBuyer(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{preference: &domain.Preference{ID: "pref-1", InitPoint: "https://mp.example/init"}}
	uc := newTestUsecase(repo, gateway, nil)

	output, err := uc.CreateCheckout(&checkoutdto.CreateCheckoutInput{Title: "Entrada", Quantity: 1, Price: 8000, Status: "pending"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	gateway.payment = &domain.Payment{ID: "123", Status: domain.StatusApproved, ExternalReference: output.BuyerID}
	if err := uc.ReconcileStatus("123"); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	buyers, _ := repo.GetAllBuyers()
	if buyers[0].Status != domain.StatusApproved {
		t.Errorf("expected status approved, got %q", buyers[0].Status)
	}
}

func TestReconcileStatus_Idempotent(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{preference: &domain.Preference{ID: "pref-1", InitPoint: "https://mp.example/init"}}
	uc := newTestUsecase(repo, gateway, nil)

	output, err := uc.CreateCheckout(&checkoutdto.CreateCheckoutInput{Title: "Entrada", Quantity: 1, Price: 8000})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	gateway.payment = &domain.Payment{ID: "123", Status: domain.StatusApproved, ExternalReference: output.BuyerID}
	for i := 0; i < 2; i++ {
		if err := uc.ReconcileStatus("123"); err != nil {
			t.Fatalf("reconcile %d failed: %v", i+1, err)
		}
	}

	buyers, _ := repo.GetAllBuyers()
	if buyers[0].Status != domain.StatusApproved {
		t.Errorf("expected status approved after duplicate webhook, got %q", buyers[0].Status)
	}
}

func TestReconcileStatus_UnknownReferenceIsNoop(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{payment: &domain.Payment{ID: "123", Status: domain.StatusApproved, ExternalReference: uuid.New().String()}}
	uc := newTestUsecase(repo, gateway, nil)

	if err := uc.ReconcileStatus("123"); err != nil {
		t.Errorf("expected no error for unknown reference, got: %v", err)
	}
	if len(repo.buyers) != 0 {
		t.Error("no record should have been created")
	}
}

func TestReconcileStatus_MalformedReferenceIsNoop(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{payment: &domain.Payment{ID: "123", Status: domain.StatusApproved, ExternalReference: "not-a-uuid"}}
	uc := newTestUsecase(repo, gateway, nil)

	if err := uc.ReconcileStatus("123"); err != nil {
		t.Errorf("expected no error for malformed reference, got: %v", err)
	}
	if repo.updateCalls != 0 {
		t.Errorf("expected no update attempt, got %d", repo.updateCalls)
	}
}

func TestReconcileStatus_GatewayErrorPropagates(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{paymentErr: &domain.GatewayError{StatusCode: 404, Message: "payment not found"}}
	uc := newTestUsecase(repo, gateway, nil)

	err := uc.ReconcileStatus("123")
	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got: %v", err)
	}
	if gatewayErr.StatusCode != 404 {
		t.Errorf("expected status 404, got %d", gatewayErr.StatusCode)
	}
	if repo.updateCalls != 0 {
		t.Error("no record may be mutated on gateway failure")
	}
}

func TestExportBuyers_PassesAllRecords(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{preference: &domain.Preference{ID: "pref-1", InitPoint: "https://mp.example/init"}}
	exporter := &mockExporter{path: "/tmp/buyers.csv"}
	uc := newTestUsecase(repo, gateway, exporter)

	for i := 0; i < 3; i++ {
		if _, err := uc.CreateCheckout(&checkoutdto.CreateCheckoutInput{Title: "Entrada", Quantity: 1, Price: 8000}); err != nil {
			t.Fatalf("checkout %d failed: %v", i, err)
		}
	}

	path, err := uc.ExportBuyers()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if path != "/tmp/buyers.csv" {
		t.Errorf("unexpected export path %q", path)
	}
	if len(exporter.exported) != 3 {
		t.Errorf("expected 3 buyers exported, got %d", len(exporter.exported))
	}
}

func TestExportBuyers_ExporterFailure(t *testing.T) {
	repo := newMockBuyerRepo()
	exporter := &mockExporter{exportErr: errors.New("disk full")}
	uc := newTestUsecase(repo, &mockGateway{}, exporter)

	_, err := uc.ExportBuyers()
	if !errors.Is(err, domain.ErrExportBuyers) {
		t.Errorf("expected ErrExportBuyers, got: %v", err)
	}
}

func gatewayDurationSamples(t *testing.T, operation string) uint64 {
	t.Helper()
	observer, err := testMetrics.GatewayRequestDuration.GetMetricWithLabelValues(operation)
	if err != nil {
		t.Fatalf("failed to fetch duration histogram for %q: %v", operation, err)
	}
	var m dto.Metric
	if err := observer.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("failed to read duration histogram for %q: %v", operation, err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestCreateCheckout_TimesGatewayRequest(t *testing.T) {
	repo := newMockBuyerRepo()
	gateway := &mockGateway{preference: &domain.Preference{ID: "pref-1", InitPoint: "https://mp.example/init"}}
	uc := newTestUsecase(repo, gateway, nil)

	before := gatewayDurationSamples(t, "create_preference")
	if _, err := uc.CreateCheckout(&checkoutdto.CreateCheckoutInput{Title: "Entrada", Quantity: 1, Price: 8000}); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	after := gatewayDurationSamples(t, "create_preference")
	if after != before+1 {
		t.Errorf("expected one new duration sample, got %d -> %d", before, after)
	}
}

func TestReconcileStatus_TimesGatewayRequest(t *testing.T) {
	repo := newMockBuyerRepo()
	buyerID, err := repo.CreateBuyer(&domain.Buyer{Email: "ana@example.com", Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("seeding buyer failed: %v", err)
	}
	gateway := &mockGateway{payment: &domain.Payment{Status: domain.StatusApproved, ExternalReference: buyerID}}
	uc := newTestUsecase(repo, gateway, nil)

	before := gatewayDurationSamples(t, "get_payment")
	if err := uc.ReconcileStatus("123456"); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	after := gatewayDurationSamples(t, "get_payment")
	if after != before+1 {
		t.Errorf("expected one new duration sample, got %d -> %d", before, after)
	}
}
