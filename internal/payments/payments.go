// Package payments exposes the payment method catalog and forwards a
// confirmed method selection to the gym API.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LeHPhuc/GymApp/internal/gymapi"
	"github.com/LeHPhuc/GymApp/internal/telemetry/tracing"
)

// Method is one selectable payment method with its display metadata.
type Method struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

var methods = []Method{
	{
		ID:          "momo",
		Name:        "MoMo",
		Description: "Ví điện tử MoMo",
		Icon:        "💳",
		Color:       "#D82D8B",
	},
	{
		ID:          "vnpay",
		Name:        "VNPay",
		Description: "Thanh toán qua VNPay",
		Icon:        "🏦",
		Color:       "#0066CC",
	},
}

// Methods returns the catalog in display order.
func Methods() []Method {
	catalog := make([]Method, len(methods))
	copy(catalog, methods)
	return catalog
}

var ErrUnknownMethod = errors.New("unknown payment method")

type paymentAPI interface {
	CreatePayment(ctx context.Context, token string, payment gymapi.PaymentRequest) (json.RawMessage, error)
}

type Service struct {
	api paymentAPI
}

func NewService(api paymentAPI) *Service {
	return &Service{api: api}
}

// Confirm validates the selected method and forwards it upstream.
// The bank code is always null: for VNPay the bank gets chosen on the
// VNPay page itself, and MoMo has no bank selection at all.
func (s *Service) Confirm(ctx context.Context, token string, packageID int, method string) (_ json.RawMessage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "payments.confirm")
	defer tracing.EndSpanWithErrCheck(span, err)

	if !knownMethod(method) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	return s.api.CreatePayment(ctx, token, gymapi.PaymentRequest{
		PackageID:     packageID,
		PaymentMethod: method,
		BankCode:      nil,
	})
}

func knownMethod(id string) bool {
	for _, method := range methods {
		if method.ID == id {
			return true
		}
	}
	return false
}
