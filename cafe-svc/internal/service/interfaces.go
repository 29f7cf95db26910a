package service

import (
	"context"

	"brew-haven/cafe-svc/internal/domain"
	"brew-haven/cafe-svc/internal/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ReservationServiceInterface interface {
	Create(ctx context.Context, reservation *domain.Reservation) (string, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context) []domain.MenuItem
}

type CheckoutServiceInterface interface {
	Checkout(req domain.CheckoutRequest) (domain.CheckoutResponse, error)
	PaymentQRCode() ([]byte, error)
}

type DiagnosticsServiceInterface interface {
	Report(ctx context.Context) domain.DiagnosticReport
}

type DocumentRepository interface {
	CreateDocument(ctx context.Context, collection string, record any) (string, error)
	GetDocuments(ctx context.Context, collection string) ([]bson.M, error)
}

type DatabaseProber interface {
	Available() bool
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, bool, error)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
}

type CacheProber interface {
	Ping(ctx context.Context) error
}

type ReservationPublisher interface {
	PublishReservation(ctx context.Context, event domain.ReservationEvent) error
}

var (
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ MenuServiceInterface        = (*MenuService)(nil)
	_ CheckoutServiceInterface    = (*CheckoutService)(nil)
	_ DiagnosticsServiceInterface = (*DiagnosticsService)(nil)

	_ DocumentRepository   = (*storage.MongoRepository)(nil)
	_ DatabaseProber       = (*storage.MongoRepository)(nil)
	_ MenuCache            = (*storage.RedisCache)(nil)
	_ CacheProber          = (*storage.RedisCache)(nil)
	_ ReservationPublisher = (*storage.KafkaPublisher)(nil)
)
