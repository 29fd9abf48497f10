package physics

// EventKind is the phase of a contact episode.
type EventKind uint8

const (
	EventEnter EventKind = iota + 1 // first tick of a contact
	EventStay                       // contact continues
	EventExit                       // contact ended
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventStay:
		return "stay"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is delivered to Target about its contact with Other. Trigger selects
// the OnTrigger* handlers instead of the OnCollision* ones.
type Event struct {
	Kind    EventKind
	Trigger bool
	Target  EntityID
	Other   EntityID
}

// Contact records one partner touched by a body during a tick, along with
// the collider it was touched through.
type Contact struct {
	Entity   EntityID
	Collider *Collider
	// Trigger is the pair's trigger state when the contact was recorded. Exits
	// are routed by it, so they match the enter even after a collider is gone.
	Trigger bool
	// Held marks a contact kept alive only by exit hysteresis. Held contacts
	// produce no event.
	Held bool
}

// Transition is one enter, stay or exit produced by DiffContacts.
type Transition struct {
	Kind    EventKind
	Contact Contact
}

// DiffContacts compares the contacts a body had on the previous tick with the
// ones it has now. Enter and stay transitions follow the order of current;
// exit transitions follow the order of previous. next is the set to carry
// into the following tick. Neither input is modified.
func DiffContacts(previous, current []Contact) (transitions []Transition, next []Contact) {
	for _, c := range current {
		if c.Held {
			continue
		}
		kind := EventEnter
		if hasContact(previous, c.Entity) {
			kind = EventStay
		}
		transitions = append(transitions, Transition{Kind: kind, Contact: c})
	}
	for _, p := range previous {
		if !hasContact(current, p.Entity) {
			transitions = append(transitions, Transition{Kind: EventExit, Contact: p})
		}
	}
	next = make([]Contact, len(current))
	copy(next, current)
	return transitions, next
}

func hasContact(contacts []Contact, id EntityID) bool {
	for _, c := range contacts {
		if c.Entity == id {
			return true
		}
	}
	return false
}
