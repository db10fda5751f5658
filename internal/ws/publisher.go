package ws

import (
	"context"
	"encoding/json"

	"skillmatrix/internal/usecase"
)

// Publisher broadcasts usecase change events as JSON text frames.
type Publisher struct {
	hub *Hub
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

func (p *Publisher) Publish(_ context.Context, evt usecase.Event) {
	if p == nil || p.hub == nil {
		return
	}
	b, err := json.Marshal(evt)
	if err != nil {
		p.hub.logf("[WS] event encode error | type=%s error=%v", evt.Type, err)
		return
	}
	p.hub.Broadcast(b)
}

var _ usecase.EventPublisher = (*Publisher)(nil)
