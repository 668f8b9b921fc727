package payments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LeHPhuc/GymApp/internal/auth"
	"github.com/LeHPhuc/GymApp/internal/gymapi"
	"github.com/LeHPhuc/GymApp/internal/telemetry/metrics"
	"github.com/LeHPhuc/GymApp/internal/telemetry/tracing"
	"github.com/LeHPhuc/GymApp/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=payments.go -destination=mocks_test.go -package=payments_test

type ConfirmRequest struct {
	PackageID int    `json:"packageId"`
	Method    string `json:"method"`
}

type MethodsResponse struct {
	Methods []Method `json:"methods"`
}

type Handler struct {
	service        *Service
	metricsManager *metrics.Manager
}

func NewHandler(service *Service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleMethods(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.payments.methods")
	defer span.End()

	respJson, err := json.Marshal(MethodsResponse{Methods: Methods()})
	if err != nil {
		log.Errorf("marshal payment methods: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.payments.confirm")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var confirmReq ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&confirmReq); err != nil {
		log.Errorf("confirm payment, unmarshal json params: %s", err)
		http.Error(w, "confirm payment failed", http.StatusBadRequest)
		return
	}
	if confirmReq.PackageID <= 0 {
		http.Error(w, "error, package id empty", http.StatusBadRequest)
		return
	}

	token := auth.TokenFromContext(ctx)
	payment, err := handler.service.Confirm(ctx, token, confirmReq.PackageID, confirmReq.Method)
	switch {
	case errors.Is(err, ErrUnknownMethod):
		http.Error(w, "error, unknown payment method", http.StatusBadRequest)
		return
	case errors.Is(err, gymapi.ErrUnauthenticated):
		http.Error(w, "no access token", http.StatusUnauthorized)
		return
	case err != nil:
		log.Errorf("confirm payment for package %d: %s", confirmReq.PackageID, err)
		http.Error(w, "error, failed to confirm payment", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterPaymentConfirms.Inc()
	log.Debugf("payment confirmed: package %d via %s", confirmReq.PackageID, confirmReq.Method)

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, payment)
}
