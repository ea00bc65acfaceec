package ecs

// EventType names the kind of a world event.
type EventType string

const (
	// EventPlayerContact fires for each enemy touching the player.
	EventPlayerContact EventType = "player_contact"
	// EventEnemyHit fires when a bullet damages an enemy.
	EventEnemyHit EventType = "enemy_hit"
	// EventEnemyDown fires when an enemy's health runs out.
	EventEnemyDown EventType = "enemy_down"
	// EventShotFired fires when the player's weapon spawns a bullet.
	EventShotFired EventType = "shot_fired"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// ContactEvent names the two entities involved in a contact or hit.
type ContactEvent struct {
	Entity Entity
	Other  Entity
}

// EventQueue is a FIFO queue that lives for a single frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
