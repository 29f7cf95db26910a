package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"brew-haven/cafe-svc/internal/domain"
	"brew-haven/cafe-svc/internal/service"
	"brew-haven/logging"

	"github.com/gorilla/mux"
)

const serviceName = "cafe-svc"

type Handler struct {
	Reservations service.ReservationServiceInterface
	Menu         service.MenuServiceInterface
	Checkout     service.CheckoutServiceInterface
	Diagnostics  service.DiagnosticsServiceInterface
}

func NewHandler(
	reservations service.ReservationServiceInterface,
	menu service.MenuServiceInterface,
	checkout service.CheckoutServiceInterface,
	diagnostics service.DiagnosticsServiceInterface,
) *Handler {
	return &Handler{
		Reservations: reservations,
		Menu:         menu,
		Checkout:     checkout,
		Diagnostics:  diagnostics,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/test", h.diagnostics).Methods("GET")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/checkout/qrcode", h.checkoutQRCode).Methods("GET")
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"message": "Brew Haven Backend is running"})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) diagnostics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.Diagnostics.Report(r.Context()))
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var reservation domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeValidationError(w, r, domain.DecodeError(err))
		return
	}

	id, err := h.Reservations.Create(r.Context(), &reservation)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "id": id})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.Menu.List(r.Context()))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, r, domain.DecodeError(err))
		return
	}

	resp, err := h.Checkout.Checkout(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) checkoutQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Checkout.PaymentQRCode()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// writeJSON encodes before writing the header so an unencodable body
// becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		logging.FromContext(r.Context()).Error("response encoding failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"response encoding failed"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(payload, '\n')); err != nil {
		logging.FromContext(r.Context()).Warn("response write failed", "error", err)
	}
}

func writeValidationError(w http.ResponseWriter, r *http.Request, errs domain.ValidationErrors) {
	writeJSON(w, r, http.StatusUnprocessableEntity, map[string]interface{}{"detail": errs})
}

// writeServiceError maps validation failures to 422 and everything else to 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var valErrs domain.ValidationErrors
	if errors.As(err, &valErrs) {
		writeValidationError(w, r, valErrs)
		return
	}

	logging.FromContext(r.Context()).Error("request failed", "error", err)
	writeJSON(w, r, http.StatusInternalServerError, map[string]string{"detail": err.Error()})
}
