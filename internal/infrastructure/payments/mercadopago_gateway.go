package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges non-cash settlements through Mercado Pago.
//
// Mock mode (PAYMENT_GATEWAY_MOCK=1) approves every charge locally, which is
// what development and CI environments run with.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		logrus.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logrus.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	logrus.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		resp := map[string]any{}
		if len(requestPayload) > 0 && json.Valid(requestPayload) {
			if err := json.Unmarshal(requestPayload, &resp); err != nil {
				resp = map[string]any{"request_payload_raw": string(requestPayload)}
			}
		}

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp["id"] = id
		resp["status"] = "approved"
		resp["status_detail"] = "accredited"
		if _, ok := resp["date_created"]; !ok {
			resp["date_created"] = now
		}
		if _, ok := resp["date_approved"]; !ok {
			resp["date_approved"] = now
		}

		b, err := json.Marshal(resp)
		if err != nil {
			return "", "", nil, err
		}

		logrus.WithField("provider_payment_id", id).Info("[payment][gateway] mock charge approved")
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		logrus.WithError(err).Error("[payment][gateway] payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		logrus.WithError(err).Error("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	logrus.WithFields(logrus.Fields{
		"provider_payment_id": resp.ID,
		"provider_status":     resp.Status,
	}).Info("[payment][gateway] charge created")

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
