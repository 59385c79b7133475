package amqp

import (
	"encoding/json"
	"time"
)

// DepositMessage announces one successful fund increment so downstream
// consumers (the audit worker) can record it without touching the API path.
type DepositMessage struct {
	User      string    `json:"user"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// NewDepositMessage creates a deposit message stamped with the current time
func NewDepositMessage(user string, amount float64) *DepositMessage {
	return &DepositMessage{
		User:      user,
		Amount:    amount,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *DepositMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// DepositMessageFromJSON creates a message from JSON bytes
func DepositMessageFromJSON(data []byte) (*DepositMessage, error) {
	var msg DepositMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
