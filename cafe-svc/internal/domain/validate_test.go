package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReservation() Reservation {
	return Reservation{Name: String("Ada"), Date: String("2025-01-31"), Time: String("18:30"), Guests: Int(4), Phone: String("555-0100"), Notes: String("window seat")}
}

func TestReservation_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Reservation)
		wantFields []string
	}{
		{name: "valid", mutate: func(r *Reservation) {}},
		{name: "optional fields omitted", mutate: func(r *Reservation) { r.Phone, r.Notes = nil, nil }},
		{name: "empty strings are accepted", mutate: func(r *Reservation) { r.Name, r.Date, r.Phone = String(""), String(""), String("") }},
		{name: "one guest", mutate: func(r *Reservation) { r.Guests = Int(1) }},
		{name: "twenty guests", mutate: func(r *Reservation) { r.Guests = Int(20) }},
		{name: "zero guests", mutate: func(r *Reservation) { r.Guests = Int(0) }, wantFields: []string{"guests"}},
		{name: "twenty one guests", mutate: func(r *Reservation) { r.Guests = Int(21) }, wantFields: []string{"guests"}},
		{name: "missing guests", mutate: func(r *Reservation) { r.Guests = nil }, wantFields: []string{"guests"}},
		{name: "missing date", mutate: func(r *Reservation) { r.Date = nil }, wantFields: []string{"date"}},
		{name: "missing name and time", mutate: func(r *Reservation) { r.Name, r.Time = nil, nil }, wantFields: []string{"name", "time"}},
		{name: "unparsed date is accepted", mutate: func(r *Reservation) { r.Date = String("next friday") }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r := validReservation()
			testCase.mutate(&r)

			err := r.Validate()
			if testCase.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var valErrs ValidationErrors
			require.True(t, errors.As(err, &valErrs))
			assert.Equal(t, testCase.wantFields, valErrs.Fields())
		})
	}
}

func TestReservation_GuestsRangeMessage(t *testing.T) {
	r := validReservation()
	r.Guests = Int(21)

	var valErrs ValidationErrors
	require.True(t, errors.As(r.Validate(), &valErrs))
	require.Len(t, valErrs, 1)
	assert.Equal(t, []any{"body", "guests"}, valErrs[0].Loc)
	assert.Equal(t, "value_error.number.not_le", valErrs[0].Type)
	assert.Contains(t, valErrs[0].Msg, "20")
}

func TestMenuItem_Validate(t *testing.T) {
	assert.NoError(t, MenuItem{Name: String("Chai"), Price: Price(0), Category: String("tea")}.Validate())

	var valErrs ValidationErrors
	require.True(t, errors.As(MenuItem{Name: String("Chai"), Category: String("tea")}.Validate(), &valErrs))
	assert.Equal(t, []string{"price"}, valErrs.Fields())

	require.True(t, errors.As(MenuItem{Name: String("Chai"), Price: Price(-1), Category: String("tea")}.Validate(), &valErrs))
	assert.Equal(t, "value_error.number.not_ge", valErrs[0].Type)

	require.True(t, errors.As(MenuItem{Price: Price(2)}.Validate(), &valErrs))
	assert.Equal(t, []string{"name", "category"}, valErrs.Fields())
}

func TestCheckoutRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLoc []any
	}{
		{name: "empty list is valid", body: `{"items":[]}`},
		{name: "valid item", body: `{"items":[{"name":"Espresso","quantity":2,"price":3.0}]}`},
		{name: "free item is valid", body: `{"items":[{"name":"Water","quantity":1,"price":0}]}`},
		{name: "empty item name is valid", body: `{"items":[{"name":"","quantity":1,"price":2}]}`},
		{name: "missing item name", body: `{"items":[{"quantity":1,"price":2}]}`, wantLoc: []any{"body", "items", 0, "name"}},
		{name: "missing items", body: `{}`, wantLoc: []any{"body", "items"}},
		{name: "zero quantity", body: `{"items":[{"name":"A","quantity":0,"price":1}]}`, wantLoc: []any{"body", "items", 0, "quantity"}},
		{name: "missing price on second item", body: `{"items":[{"name":"A","quantity":1,"price":1},{"name":"B","quantity":1}]}`, wantLoc: []any{"body", "items", 1, "price"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var req CheckoutRequest
			require.NoError(t, json.Unmarshal([]byte(testCase.body), &req))

			err := req.Validate()
			if testCase.wantLoc == nil {
				assert.NoError(t, err)
				return
			}

			var valErrs ValidationErrors
			require.True(t, errors.As(err, &valErrs))
			assert.Equal(t, testCase.wantLoc, valErrs[0].Loc)
		})
	}
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItem
		want  float64
	}{
		{name: "empty", items: nil, want: 0},
		{name: "single line", items: []OrderItem{{Name: String("Espresso"), Quantity: 2, Price: Price(3.0)}}, want: 6.0},
		{name: "exact half rounds to even", items: []OrderItem{{Name: String("A"), Quantity: 3, Price: Price(1.005)}}, want: 3.02},
		{name: "very large price", items: []OrderItem{{Name: String("Gold"), Quantity: 1, Price: Price(1e307)}}, want: 1e307},
		{name: "several lines", items: []OrderItem{
			{Name: String("Cappuccino"), Quantity: 1, Price: Price(4.5)},
			{Name: String("Muffin"), Quantity: 3, Price: Price(3.5)},
		}, want: 15.0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, OrderTotal(testCase.items))
		})
	}
}

func TestRoundCents_HalfToEven(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.125, want: 0.12},
		{in: 0.375, want: 0.38},
		{in: 2.5, want: 2.5},
		{in: 0.285, want: 0.28},
		{in: 1.015, want: 1.02},
		{in: 2.675, want: 2.68},
		{in: 8.345, want: 8.34},
		{in: 10.005, want: 10.0},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, RoundCents(testCase.in), "%v", testCase.in)
	}
}

func TestOrder_Validate(t *testing.T) {
	assert.NoError(t, Order{Items: []OrderItem{}, Total: Price(0)}.Validate())

	var valErrs ValidationErrors
	require.True(t, errors.As(Order{}.Validate(), &valErrs))
	assert.Equal(t, []string{"items", "total"}, valErrs.Fields())
}

func TestUser_Defaults(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ada","email":"ada@example.com","address":"1 Bean St"}`), &u))
	assert.True(t, u.IsActive)
	assert.Nil(t, u.Age)
	assert.NoError(t, u.Validate())

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ada","email":"ada@example.com","address":"1 Bean St","is_active":false,"age":121}`), &u))
	assert.False(t, u.IsActive)

	var valErrs ValidationErrors
	require.True(t, errors.As(u.Validate(), &valErrs))
	assert.Equal(t, []string{"age"}, valErrs.Fields())
}

func TestProduct_Defaults(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Beans","price":12.5,"category":"retail"}`), &p))
	assert.True(t, p.InStock)
	assert.NoError(t, p.Validate())

	require.NoError(t, json.Unmarshal([]byte(`{"title":"Beans","category":"retail"}`), &p))
	var valErrs ValidationErrors
	require.True(t, errors.As(p.Validate(), &valErrs))
	assert.Equal(t, []string{"price"}, valErrs.Fields())
}

func TestCollectionName(t *testing.T) {
	assert.Equal(t, ReservationCollection, CollectionName(Reservation{}))
	assert.Equal(t, ReservationCollection, CollectionName(&Reservation{}))
	assert.Equal(t, MenuItemCollection, CollectionName(MenuItem{}))
	assert.Equal(t, "product", CollectionName(Product{}))
	assert.Equal(t, "", CollectionName(nil))
}

func TestDecodeError(t *testing.T) {
	var r Reservation
	err := json.Unmarshal([]byte(`{"guests":"four"}`), &r)
	require.Error(t, err)

	valErrs := DecodeError(err)
	require.Len(t, valErrs, 1)
	assert.Equal(t, []any{"body", "guests"}, valErrs[0].Loc)
	assert.Equal(t, "type_error", valErrs[0].Type)

	err = json.Unmarshal([]byte(`{bad`), &r)
	valErrs = DecodeError(err)
	assert.Equal(t, []any{"body"}, valErrs[0].Loc)
	assert.Equal(t, "value_error.jsondecode", valErrs[0].Type)
}

func TestFallbackMenu(t *testing.T) {
	menu := FallbackMenu()
	require.Len(t, menu, 4)

	names := make([]string, 0, len(menu))
	for _, item := range menu {
		names = append(names, Value(item.Name))
		assert.NoError(t, item.Validate())
	}
	assert.Equal(t, []string{"Espresso", "Cappuccino", "Matcha Latte", "Blueberry Muffin"}, names)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 80))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "⚠️", Truncate("⚠️ warning", 2))
}

func TestReservation_DecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantGuests *int
		wantType   string
		decodeErr  bool
	}{
		{name: "integer guests", body: `{"name":"Ada","date":"d","time":"t","guests":4}`, wantGuests: Int(4)},
		{name: "whole float guests", body: `{"name":"Ada","date":"d","time":"t","guests":4.0}`, wantGuests: Int(4)},
		{name: "empty name accepted", body: `{"name":"","date":"d","time":"t","guests":2}`, wantGuests: Int(2)},
		{name: "fractional guests", body: `{"name":"Ada","date":"d","time":"t","guests":4.5}`, decodeErr: true},
		{name: "missing guests", body: `{"name":"Ada","date":"d","time":"t"}`, wantType: "value_error.missing"},
		{name: "null guests", body: `{"name":"Ada","date":"d","time":"t","guests":null}`, wantType: "value_error.missing"},
		{name: "huge guests", body: `{"name":"Ada","date":"d","time":"t","guests":1e12}`, wantType: "value_error.number.not_le"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var r Reservation
			err := json.Unmarshal([]byte(testCase.body), &r)
			if testCase.decodeErr {
				require.Error(t, err)
				valErrs := DecodeError(err)
				assert.Equal(t, []any{"body", "guests"}, valErrs[0].Loc)
				assert.Equal(t, "type_error", valErrs[0].Type)
				return
			}
			require.NoError(t, err)

			err = r.Validate()
			if testCase.wantType == "" {
				assert.NoError(t, err)
				assert.Equal(t, testCase.wantGuests, r.Guests)
				return
			}

			var valErrs ValidationErrors
			require.True(t, errors.As(err, &valErrs))
			assert.Equal(t, []any{"body", "guests"}, valErrs[0].Loc)
			assert.Equal(t, testCase.wantType, valErrs[0].Type)
		})
	}
}

func TestReservation_OptionalFieldsKeepSubmittedValue(t *testing.T) {
	var r Reservation
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ada","date":"d","time":"t","guests":2,"phone":""}`), &r))

	require.NotNil(t, r.Phone)
	assert.Equal(t, "", *r.Phone)
	assert.Nil(t, r.Notes)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","date":"d","time":"t","guests":2,"phone":"","notes":null}`, string(out))
}

func TestMenuItem_MissingOptionalFieldsEncodeAsNull(t *testing.T) {
	out, err := json.Marshal(MenuItem{Name: String("Chai"), Price: Price(3), Category: String("tea")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Chai","description":null,"price":3,"category":"tea","image":null}`, string(out))
}
