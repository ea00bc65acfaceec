// Package pool provides a fixed-capacity recyclable container for
// short-lived game objects.
//
// All slots are allocated once by New. Every slot sits in exactly one of the
// free chain or the active chain (or is briefly reserved between Acquire and
// PushActive). Chains are linked by slot index, never by pointer, so the
// backing array can be handed out as plain values.
package pool

import "errors"

var (
	ErrExhausted     = errors.New("pool: no free slots")
	ErrInvalidHandle = errors.New("pool: invalid handle")
	ErrDestroyed     = errors.New("pool: destroyed")
	ErrCapacity      = errors.New("pool: capacity must be positive")
)

// Handle identifies a slot. Handles stay valid for the pool's lifetime but
// carry no identity once their slot is recycled.
type Handle int32

const none int32 = -1

// Action is returned by a ForEach visitor to decide the fate of an element.
type Action uint8

const (
	// Keep leaves the element in the active chain.
	Keep Action = iota
	// Remove unlinks the element, runs the release callback and returns the
	// slot to the tail of the free chain.
	Remove
	// Stop ends the traversal; the current and remaining elements are kept.
	Stop
)

type slotState uint8

const (
	slotFree slotState = iota
	slotReserved
	slotActive
)

type slot[T any] struct {
	value T
	next  int32
	state slotState
}

// Pool is a fixed-capacity arena of T with O(1) acquire and release.
// It is not safe for concurrent use.
type Pool[T any] struct {
	slots      []slot[T]
	release    func(*T)
	freeHead   int32
	freeTail   int32
	activeHead int32
	free       int
	active     int
	destroyed  bool
}

// New allocates a pool of capacity slots. release, if non-nil, runs exactly
// once on an element before its slot becomes reusable.
func New[T any](capacity int, release func(*T)) (*Pool[T], error) {
	if capacity <= 0 {
		return nil, ErrCapacity
	}

	p := &Pool[T]{
		slots:      make([]slot[T], capacity),
		release:    release,
		freeHead:   0,
		freeTail:   int32(capacity - 1),
		activeHead: none,
		free:       capacity,
	}
	for i := range p.slots {
		p.slots[i].next = int32(i + 1)
	}
	p.slots[capacity-1].next = none
	return p, nil
}

// Cap returns the fixed number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Active returns the number of elements in the active chain.
func (p *Pool[T]) Active() int {
	return p.active
}

// Free returns the number of slots in the free chain.
func (p *Pool[T]) Free() int {
	return p.free
}

// Reserved returns the number of slots handed out by Acquire that have not
// been pushed or returned yet.
func (p *Pool[T]) Reserved() int {
	return len(p.slots) - p.active - p.free
}

// Acquire removes the head of the free chain and reserves it for the caller.
func (p *Pool[T]) Acquire() (Handle, error) {
	if p.destroyed {
		return 0, ErrDestroyed
	}
	if p.freeHead == none {
		return 0, ErrExhausted
	}

	idx := p.freeHead
	s := &p.slots[idx]
	p.freeHead = s.next
	if p.freeHead == none {
		p.freeTail = none
	}
	s.next = none
	s.state = slotReserved
	p.free--
	return Handle(idx), nil
}

// Slot returns the element stored in a reserved or active slot.
func (p *Pool[T]) Slot(h Handle) (*T, error) {
	s, err := p.lookup(h)
	if err != nil {
		return nil, err
	}
	if s.state == slotFree {
		return nil, ErrInvalidHandle
	}
	return &s.value, nil
}

// PushActive copies v into the reserved slot h and links it at the head of
// the active chain.
func (p *Pool[T]) PushActive(h Handle, v T) error {
	s, err := p.lookup(h)
	if err != nil {
		return err
	}
	if s.state != slotReserved {
		return ErrInvalidHandle
	}

	s.value = v
	s.state = slotActive
	s.next = p.activeHead
	p.activeHead = int32(h)
	p.active++
	return nil
}

// Return gives a reserved slot back to the free chain without activating it.
func (p *Pool[T]) Return(h Handle) error {
	s, err := p.lookup(h)
	if err != nil {
		return err
	}
	if s.state != slotReserved {
		return ErrInvalidHandle
	}
	var zero T
	s.value = zero
	p.appendFree(int32(h))
	return nil
}

// Spawn acquires a slot and pushes v into the active chain.
func (p *Pool[T]) Spawn(v T) (Handle, error) {
	h, err := p.Acquire()
	if err != nil {
		return 0, err
	}
	if err := p.PushActive(h, v); err != nil {
		return 0, err
	}
	return h, nil
}

// ForEach visits the active chain in order, newest first. The visitor may
// mutate the element in place; see Action for the traversal rules.
// Elements pushed during the traversal are not visited.
func (p *Pool[T]) ForEach(fn func(*T) Action) {
	if p.destroyed || fn == nil {
		return
	}

	prev := none
	cur := p.activeHead
	for cur != none {
		s := &p.slots[cur]
		next := s.next
		switch fn(&s.value) {
		case Remove:
			p.unlink(prev, cur, next)
			p.active--
			p.recycle(cur)
		case Stop:
			return
		default:
			prev = cur
		}
		cur = next
	}
}

// Destroy runs the release callback on every element still in the active
// chain and drops the backing array. Recycled slots were already released
// when they left the active chain and are not released again.
func (p *Pool[T]) Destroy() {
	if p.destroyed {
		return
	}
	if p.release != nil {
		for cur := p.activeHead; cur != none; cur = p.slots[cur].next {
			p.release(&p.slots[cur].value)
		}
	}
	p.slots = nil
	p.activeHead, p.freeHead, p.freeTail = none, none, none
	p.active, p.free = 0, 0
	p.destroyed = true
}

func (p *Pool[T]) lookup(h Handle) (*slot[T], error) {
	if p.destroyed {
		return nil, ErrDestroyed
	}
	if h < 0 || int(h) >= len(p.slots) {
		return nil, ErrInvalidHandle
	}
	return &p.slots[h], nil
}

// unlink removes cur from the active chain. prev is none when cur was the
// head at the time it was reached; elements pushed since then sit in front
// of it and are walked to find the real predecessor.
func (p *Pool[T]) unlink(prev, cur, next int32) {
	if prev != none {
		p.slots[prev].next = next
		return
	}
	if p.activeHead == cur {
		p.activeHead = next
		return
	}
	for i := p.activeHead; i != none; i = p.slots[i].next {
		if p.slots[i].next == cur {
			p.slots[i].next = next
			return
		}
	}
}

func (p *Pool[T]) recycle(idx int32) {
	s := &p.slots[idx]
	if p.release != nil {
		p.release(&s.value)
	}
	var zero T
	s.value = zero
	p.appendFree(idx)
}

func (p *Pool[T]) appendFree(idx int32) {
	s := &p.slots[idx]
	s.state = slotFree
	s.next = none
	if p.freeTail == none {
		p.freeHead = idx
	} else {
		p.slots[p.freeTail].next = idx
	}
	p.freeTail = idx
	p.free++
}
