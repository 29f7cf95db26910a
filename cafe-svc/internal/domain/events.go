package domain

import "time"

const EventReservationCreated = "reservation_created"

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	Name          string    `json:"name"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Guests        int       `json:"guests"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewReservationEvent(id string, r Reservation, now time.Time) ReservationEvent {
	var guests int
	if r.Guests != nil {
		guests = *r.Guests
	}
	return ReservationEvent{
		Type:          EventReservationCreated,
		ReservationID: id,
		Name:          Value(r.Name),
		Date:          Value(r.Date),
		Time:          Value(r.Time),
		Guests:        guests,
		Timestamp:     now,
	}
}
