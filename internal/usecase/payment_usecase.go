package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"retail_console/internal/domain/entities"
	"retail_console/internal/usecase/interfaces"
)

var (
	ErrQuotationNotAccepted       = errors.New("quotation not accepted")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayNotSet       = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase charges an accepted quotation through the external gateway,
// appends the outcome to the quotation's payment timeline, and refreshes the
// engagement's bill summary fields.

type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, quotationID string, payload json.RawMessage) (entities.PaymentEvent, error)
}

type PaymentUseCase struct {
	quotations  interfaces.IQuotationRepository
	engagements interfaces.IEngagementRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(quotations interfaces.IQuotationRepository, engagements interfaces.IEngagementRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{quotations: quotations, engagements: engagements, gateway: gateway}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, quotationID string, payload json.RawMessage) (entities.PaymentEvent, error) {
	quotationID = strings.TrimSpace(quotationID)
	log.Printf("[payment][usecase] record start quotation_id=%q payload_len=%d", quotationID, len(payload))
	if quotationID == "" {
		return entities.PaymentEvent{}, ErrInvalidQuotationID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.PaymentEvent{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.PaymentEvent{}, ErrPaymentGatewayNotSet
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	if q.ID == "" {
		return entities.PaymentEvent{}, ErrQuotationNotFound
	}
	if q.Status != entities.QuotationStatusAccepted {
		log.Printf("[payment][usecase] quotation not accepted quotation_id=%s status=%s", quotationID, q.Status)
		return entities.PaymentEvent{}, ErrQuotationNotAccepted
	}

	// The amount charged is always the quotation total from the store, not
	// whatever the caller put in the payload.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.PaymentEvent{}, ErrInvalidPaymentPayload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quotationID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Quotation %s", quotationID)
	}
	reqMap["transaction_amount"] = q.TotalAmount
	if b, err := json.Marshal(reqMap); err == nil {
		payload = b
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed quotation_id=%s err=%v", quotationID, err)
		// The failure is still part of the audit trail; the append is
		// best-effort and never masks the gateway error.
		failed := entities.PaymentEvent{
			Type:      entities.EventPaymentFailed,
			Timestamp: time.Now().UTC(),
			Message:   fmt.Sprintf("Payment attempt failed for quotation %s", quotationID),
		}
		if appendErr := u.quotations.AppendTimelineEvent(ctx, quotationID, failed); appendErr != nil {
			log.Printf("[payment][usecase] failed-event append failed quotation_id=%s err=%v", quotationID, appendErr)
		}
		return entities.PaymentEvent{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] gateway success quotation_id=%s provider_payment_id=%s provider_status=%s", quotationID, providerPaymentID, providerStatus)

	now := time.Now().UTC()
	ev := entities.PaymentEvent{
		Type:      entities.EventPaymentReceived,
		Timestamp: now,
		Message:   fmt.Sprintf("Payment of %.2f received (provider id %s)", q.TotalAmount, providerPaymentID),
	}
	if err := u.quotations.AppendTimelineEvent(ctx, quotationID, ev); err != nil {
		log.Printf("[payment][usecase] received-event append failed quotation_id=%s err=%v", quotationID, err)
		return entities.PaymentEvent{}, err
	}

	if _, err := u.engagements.UpdateBillSummary(ctx, q.EngagementID, entities.BillStatusPaid, now); err != nil {
		// Summary fields are a read-time mirror, not an invariant; the
		// timeline already carries the truth. Log and keep going.
		log.Printf("[payment][usecase] bill summary update failed engagement_id=%s err=%v", q.EngagementID, err)
	}

	log.Printf("[payment][usecase] record success quotation_id=%s amount=%.2f", quotationID, q.TotalAmount)
	return ev, nil
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
