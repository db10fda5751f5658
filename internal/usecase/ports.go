package usecase

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks Cache,EventPublisher

import (
	"context"
	"time"
)

// Cache stores assembled read models as JSON. Implementations must treat a
// missing key as (false, nil).
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// EventPublisher fans change events out to live subscribers. Publish must
// not block on slow subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, evt Event)
}

const (
	EventPersonCreated = "person.created"
	EventPersonUpdated = "person.updated"
	EventPersonDeleted = "person.deleted"

	EventSkillCreated = "skill.created"
	EventSkillUpdated = "skill.updated"
	EventSkillDeleted = "skill.deleted"

	EventPersonSkillAdded      = "person_skill.added"
	EventPersonSkillUpdated    = "person_skill.updated"
	EventPersonSkillRemoved    = "person_skill.removed"
	EventPersonSkillVerified   = "person_skill.verified"
	EventPersonSkillUnverified = "person_skill.unverified"

	EventVerificationRecorded = "verification.recorded"
	EventVerificationRemoved  = "verification.removed"
)

type Event struct {
	Type       string    `json:"type"`
	ResourceID string    `json:"resourceId"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
