// Package msggateway abstracts the vendor messaging API used to deliver
// campaign messages to customers.
package msggateway

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Delivery outcomes reported by a gateway
const (
	StatusSent   = "SENT"
	StatusFailed = "FAILED"
)

// Receipt describes the outcome of one send attempt
type Receipt struct {
	MessageID string
	Status    string
	Timestamp time.Time
}

// Gateway represents a vendor messaging gateway
type Gateway interface {
	Send(campaignID, customerID, message string) (*Receipt, error)
}

// MockGateway simulates a vendor API: each send succeeds with the configured
// probability and is acknowledged with a generated message ID. Safe for
// concurrent use.
type MockGateway struct {
	successRate float64
	mu          sync.Mutex
	rng         *rand.Rand
}

// NewMockGateway creates a new MockGateway. successRate is clamped to [0, 1].
func NewMockGateway(successRate float64) *MockGateway {
	if successRate < 0 {
		successRate = 0
	}
	if successRate > 1 {
		successRate = 1
	}
	return &MockGateway{
		successRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Send simulates delivering one message
func (g *MockGateway) Send(campaignID, customerID, message string) (*Receipt, error) {
	g.mu.Lock()
	success := g.rng.Float64() < g.successRate
	g.mu.Unlock()

	status := StatusFailed
	if success {
		status = StatusSent
	}
	return &Receipt{
		MessageID: "msg_" + uuid.NewString(),
		Status:    status,
		Timestamp: time.Now(),
	}, nil
}
