package service

import (
	"context"
	"fmt"
	"time"

	"brew-haven/cafe-svc/internal/domain"
	"brew-haven/logging"
)

type ReservationService struct {
	repository DocumentRepository
	publisher  ReservationPublisher
	now        func() time.Time
}

func NewReservationService(repository DocumentRepository, publisher ReservationPublisher) *ReservationService {
	return &ReservationService{
		repository: repository,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Create validates and stores the reservation, returning its id.
// Validation failures come back as domain.ValidationErrors.
func (s *ReservationService) Create(ctx context.Context, reservation *domain.Reservation) (string, error) {
	if err := reservation.Validate(); err != nil {
		return "", err
	}

	id, err := s.repository.CreateDocument(ctx, domain.ReservationCollection, reservation)
	if err != nil {
		return "", fmt.Errorf("failed to store reservation: %w", err)
	}

	if s.publisher != nil {
		event := domain.NewReservationEvent(id, *reservation, s.now().UTC())
		if err := s.publisher.PublishReservation(ctx, event); err != nil {
			logging.FromContext(ctx).Warn("reservation event not published", "reservation_id", id, "error", err)
		}
	}

	return id, nil
}
