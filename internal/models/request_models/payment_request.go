package request_models

import "encoding/json"

// PaystackEvent is the subset of a Paystack webhook body the service reads.
type PaystackEvent struct {
	Event string             `json:"event"`
	Data  PaystackChargeData `json:"data"`
}

type PaystackCustomer struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PaystackChargeData struct {
	ID        int64            `json:"id"`
	Reference string           `json:"reference"`
	Status    string           `json:"status"`
	Amount    int64            `json:"amount"` // minor units (kobo / pesewas)
	Currency  string           `json:"currency"`
	PaidAt    string           `json:"paid_at"`
	Metadata  json.RawMessage  `json:"metadata"`
	Customer  PaystackCustomer `json:"customer"`
}

// PaystackMetadata is what the checkout attaches to a transaction.
type PaystackMetadata struct {
	OrderID string        `json:"order_id"`
	Order   *OrderPayload `json:"order,omitempty"`
}

// ParseMetadata tolerates the empty-string metadata Paystack sends when a
// transaction was created without any, and metadata sent as a JSON string.
func (d PaystackChargeData) ParseMetadata() (PaystackMetadata, error) {
	var m PaystackMetadata
	raw := d.Metadata
	if len(raw) == 0 || string(raw) == `""` || string(raw) == "null" {
		return m, nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return m, err
		}
		raw = []byte(inner)
	}
	err := json.Unmarshal(raw, &m)
	return m, err
}
