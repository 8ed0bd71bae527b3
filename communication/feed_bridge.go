package communication

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"

	"github.com/nxterminal/protocol-wars/core"
)

// StartFeedBridge subscribes to the engine's feed subjects and relays
// everything to websocket clients. A nil broker disables the bridge.
func StartFeedBridge(broker *core.NATSBroker) {
	if broker == nil {
		log.Println("feed bridge disabled: no broker")
		return
	}

	relay := func(eventType string) nats.MsgHandler {
		return func(msg *nats.Msg) {
			var payload map[string]any
			if err := json.Unmarshal(msg.Data, &payload); err != nil {
				log.Printf("feed bridge: bad payload on %s: %v", msg.Subject, err)
				return
			}
			BroadcastEvent(eventType, payload)
		}
	}

	if err := broker.Subscribe(core.SubjectActions, relay(EventDevAction)); err != nil {
		log.Printf("feed bridge: subscribe %s failed: %v", core.SubjectActions, err)
	}
	if err := broker.Subscribe(core.SubjectChat, relay(EventChat)); err != nil {
		log.Printf("feed bridge: subscribe %s failed: %v", core.SubjectChat, err)
	}
	if err := broker.Subscribe(core.SubjectMints, relay(EventDevMinted)); err != nil {
		log.Printf("feed bridge: subscribe %s failed: %v", core.SubjectMints, err)
	}
}
