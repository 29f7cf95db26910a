package domain

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
)

const (
	ReservationCollection = "reservation"
	MenuItemCollection    = "menuitem"
)

type Reservation struct {
	Name   *string `json:"name" bson:"name" validate:"required"`
	Date   *string `json:"date" bson:"date" validate:"required"`
	Time   *string `json:"time" bson:"time" validate:"required"`
	Guests *int    `json:"guests" bson:"guests" validate:"required,min=1,max=20"`
	Phone  *string `json:"phone" bson:"phone"`
	Notes  *string `json:"notes" bson:"notes"`
}

func (r Reservation) Validate() error { return validateStruct(r) }

// UnmarshalJSON also accepts a whole-valued float such as 4.0 for guests.
func (r *Reservation) UnmarshalJSON(data []byte) error {
	type alias Reservation
	aux := struct {
		*alias
		Guests json.RawMessage `json:"guests"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	guests, err := wholeNumber(aux.Guests)
	if err != nil {
		return &json.UnmarshalTypeError{Value: string(aux.Guests), Type: reflect.TypeOf(0), Field: "guests"}
	}
	r.Guests = guests
	return nil
}

// wholeNumber returns nil for an absent or null value. Values beyond the
// int32 range are clamped so range validation still reports them.
func wholeNumber(raw json.RawMessage) (*int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if f != math.Trunc(f) {
		return nil, errors.New("not a whole number")
	}

	f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)
	return Int(int(f)), nil
}

// MenuItem.Category is one of coffee, tea or bakery by convention only.
type MenuItem struct {
	Name        *string  `json:"name" bson:"name" validate:"required"`
	Description *string  `json:"description" bson:"description"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Category    *string  `json:"category" bson:"category" validate:"required"`
	Image       *string  `json:"image" bson:"image"`
}

func (m MenuItem) Validate() error { return validateStruct(m) }

type OrderItem struct {
	Name     *string  `json:"name" bson:"name" validate:"required"`
	Quantity int      `json:"quantity" bson:"quantity" validate:"min=1"`
	Price    *float64 `json:"price" bson:"price" validate:"required,gte=0"`
}

func (o OrderItem) Validate() error { return validateStruct(o) }

// Order is not read or written by any endpoint.
type Order struct {
	Items         []OrderItem `json:"items" bson:"items" validate:"required,dive"`
	Total         *float64    `json:"total" bson:"total" validate:"required,gte=0"`
	CustomerName  *string     `json:"customer_name" bson:"customer_name"`
	CustomerEmail *string     `json:"customer_email" bson:"customer_email"`
}

func (o Order) Validate() error { return validateStruct(o) }

type User struct {
	Name     *string `json:"name" bson:"name" validate:"required"`
	Email    *string `json:"email" bson:"email" validate:"required"`
	Address  *string `json:"address" bson:"address" validate:"required"`
	Age      *int    `json:"age" bson:"age" validate:"omitempty,min=0,max=120"`
	IsActive bool    `json:"is_active" bson:"is_active"`
}

func (u User) Validate() error { return validateStruct(u) }

// UnmarshalJSON defaults IsActive to true when the key is absent.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	decoded := alias{IsActive: true}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = User(decoded)
	return nil
}

type Product struct {
	Title       *string  `json:"title" bson:"title" validate:"required"`
	Description *string  `json:"description" bson:"description"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Category    *string  `json:"category" bson:"category" validate:"required"`
	InStock     bool     `json:"in_stock" bson:"in_stock"`
}

func (p Product) Validate() error { return validateStruct(p) }

// UnmarshalJSON defaults InStock to true when the key is absent.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	decoded := alias{InStock: true}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = Product(decoded)
	return nil
}

// CollectionName derives the storage collection from the record's type name:
// Reservation -> "reservation", MenuItem -> "menuitem".
func CollectionName(record any) string {
	t := reflect.TypeOf(record)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return strings.ToLower(t.Name())
}

func Price(v float64) *float64 { return &v }

func String(v string) *string { return &v }

func Int(v int) *int { return &v }

// Value dereferences p, yielding "" for nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
