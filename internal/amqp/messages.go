package amqp

import (
	"encoding/json"
	"time"
)

// LedgerCommittedMessage announces that one journal commit (a single entry, a
// transfer pair, or a reversal batch) became durable. Consumers fetch the full
// rows from the database; the message only carries identifiers.
type LedgerCommittedMessage struct {
	TransactionIDs []string  `json:"transactionIDs"`
	AccountIDs     []string  `json:"accountIDs"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewLedgerCommittedMessage creates a commit announcement.
func NewLedgerCommittedMessage(transactionIDs, accountIDs []string) *LedgerCommittedMessage {
	return &LedgerCommittedMessage{
		TransactionIDs: transactionIDs,
		AccountIDs:     accountIDs,
		Timestamp:      time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerCommittedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerCommittedMessageFromJSON creates a message from JSON bytes
func LedgerCommittedMessageFromJSON(data []byte) (*LedgerCommittedMessage, error) {
	var msg LedgerCommittedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
