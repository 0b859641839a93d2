package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NotifyOutcome tags the known shapes a provider callback can take. Anything
// the boundary parser cannot classify is Unknown and never reaches business
// handling.
type NotifyOutcome string

const (
	NotifySuccess NotifyOutcome = "success"
	NotifyFailure NotifyOutcome = "failure"
	NotifyUnknown NotifyOutcome = "unknown"
)

// NotifyResult is the single validated representation of a provider
// callback, regardless of which wire shape it arrived in.
type NotifyResult struct {
	Outcome       NotifyOutcome `json:"outcome"`
	OrderID       string        `json:"order_id"`
	TransactionID string        `json:"transaction_id,omitempty"`
	AmountCents   int64         `json:"amount_cents"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	ErrorCode     string        `json:"error_code,omitempty"`
	ErrorMessage  string        `json:"error_message,omitempty"`
}

type headerNotifyBody struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	AmountCents   int64  `json:"amount_cents"`
	TradeState    string `json:"trade_state"`
	PaidAt        string `json:"paid_at"`
	ErrorCode     string `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
}

// ParseHeaderNotify decodes and validates the JSON body of the
// header-signed provider's callback.
func ParseHeaderNotify(body []byte) (*NotifyResult, error) {
	var raw headerNotifyBody
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("malformed notify body: %w", err)
	}
	if raw.OrderID == "" {
		return nil, fmt.Errorf("notify body missing order_id")
	}

	result := &NotifyResult{
		OrderID:       raw.OrderID,
		TransactionID: raw.TransactionID,
		AmountCents:   raw.AmountCents,
		ErrorCode:     raw.ErrorCode,
		ErrorMessage:  raw.ErrorMessage,
	}

	switch strings.ToUpper(raw.TradeState) {
	case "SUCCESS", "TRADE_SUCCESS":
		result.Outcome = NotifySuccess
	case "PAYERROR", "CLOSED", "REVOKED", "TRADE_CLOSED", "FAIL":
		result.Outcome = NotifyFailure
	default:
		result.Outcome = NotifyUnknown
	}

	if raw.PaidAt != "" {
		if ts, err := time.Parse(time.RFC3339, raw.PaidAt); err == nil {
			result.PaidAt = &ts
		}
	}

	return result, nil
}

// ParseParamNotify validates the form parameters of the parameter-signed
// provider's callback. Amounts arrive as decimal currency-unit strings.
func ParseParamNotify(params map[string]string) (*NotifyResult, error) {
	orderID := params["out_trade_no"]
	if orderID == "" {
		return nil, fmt.Errorf("notify params missing out_trade_no")
	}

	result := &NotifyResult{
		OrderID:       orderID,
		TransactionID: params["trade_no"],
		ErrorCode:     params["sub_code"],
		ErrorMessage:  params["sub_msg"],
	}

	if amount := params["total_amount"]; amount != "" {
		cents, err := parseAmountCents(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid total_amount %q: %w", amount, err)
		}
		result.AmountCents = cents
	}

	switch params["trade_status"] {
	case "TRADE_SUCCESS", "TRADE_FINISHED":
		result.Outcome = NotifySuccess
	case "TRADE_CLOSED":
		result.Outcome = NotifyFailure
	default:
		result.Outcome = NotifyUnknown
	}

	return result, nil
}

// parseAmountCents converts a decimal amount string with at most two
// fractional digits into cents without going through floats.
func parseAmountCents(s string) (int64, error) {
	whole, frac, _ := strings.Cut(s, ".")
	// ParseInt("-0") is 0, so a sign must be rejected before combining.
	if strings.HasPrefix(whole, "-") || strings.HasPrefix(frac, "-") {
		return 0, fmt.Errorf("negative amount")
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("more than two fractional digits")
	}
	for len(frac) < 2 {
		frac += "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, err
	}
	return units*100 + cents, nil
}
