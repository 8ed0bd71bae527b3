package core

import (
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSBroker encapsulates a NATS connection used to fan simulation
// facts out to the feed layer. The engine publishes; it never reads.
type NATSBroker struct {
	Conn *nats.Conn
}

// NewNATSBroker creates a new NATSBroker connected to the provided URL.
func NewNATSBroker(url string) (*NATSBroker, error) {
	nc, err := nats.Connect(url,
		nats.Timeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &NATSBroker{Conn: nc}, nil
}

// Publish sends data on the provided subject. A nil broker is a no-op
// so the engine can run without a feed attached (tests, nxctl).
func (b *NATSBroker) Publish(subject string, data []byte) error {
	if b == nil {
		return nil
	}
	return b.Conn.Publish(subject, data)
}

// Subscribe registers a callback for a specific subject.
func (b *NATSBroker) Subscribe(subject string, cb nats.MsgHandler) error {
	_, err := b.Conn.Subscribe(subject, cb)
	return err
}

// Close gracefully closes the connection.
func (b *NATSBroker) Close() {
	if b == nil || b.Conn == nil {
		return
	}
	b.Conn.Close()
}

// Feed subjects.
const (
	SubjectActions = "sim.actions"
	SubjectChat    = "sim.chat"
	SubjectMints   = "sim.mints"
)

// SetupNATS connects a broker or logs and returns nil when the feed is
// unavailable; the simulation itself never depends on it.
func SetupNATS(url string) *NATSBroker {
	broker, err := NewNATSBroker(url)
	if err != nil {
		log.Printf("NATS unavailable at %s, feed disabled: %v", url, err)
		return nil
	}
	log.Printf("Connected to NATS at %s", url)
	return broker
}
