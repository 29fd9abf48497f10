package physics

import "testing"

func kinds(ts []Transition) []EventKind {
	out := make([]EventKind, len(ts))
	for i, t := range ts {
		out[i] = t.Kind
	}
	return out
}

func TestDiffContactsEnterStayExit(t *testing.T) {
	a := Contact{Entity: 1, Collider: NewBoxCollider(1, 1, 1)}
	b := Contact{Entity: 2, Collider: NewBoxCollider(2, 1, 1)}
	c := Contact{Entity: 3, Collider: NewBoxCollider(3, 1, 1)}

	ts, next := DiffContacts([]Contact{a, b}, []Contact{b, c})
	got := kinds(ts)
	want := []EventKind{EventStay, EventEnter, EventExit}
	if len(got) != len(want) {
		t.Fatalf("transitions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d = %v, want %v", i, got[i], want[i])
		}
	}
	if ts[0].Contact.Entity != 2 || ts[1].Contact.Entity != 3 || ts[2].Contact.Entity != 1 {
		t.Errorf("transition order = %+v", ts)
	}
	if len(next) != 2 || next[0].Entity != 2 || next[1].Entity != 3 {
		t.Errorf("next = %+v", next)
	}
}

func TestDiffContactsHeldProducesNoEvent(t *testing.T) {
	a := Contact{Entity: 1, Collider: NewBoxCollider(1, 1, 1)}
	held := a
	held.Held = true

	ts, next := DiffContacts([]Contact{a}, []Contact{held})
	if len(ts) != 0 {
		t.Errorf("transitions = %v, want none", kinds(ts))
	}
	if len(next) != 1 || !next[0].Held {
		t.Errorf("next = %+v, want held contact carried", next)
	}
}

func TestDiffContactsDoesNotAliasInput(t *testing.T) {
	cur := []Contact{{Entity: 1}}
	_, next := DiffContacts(nil, cur)
	next[0].Entity = 99
	if cur[0].Entity != 1 {
		t.Error("next aliases current")
	}
}

func TestDiffContactsEmpty(t *testing.T) {
	ts, next := DiffContacts(nil, nil)
	if len(ts) != 0 || len(next) != 0 {
		t.Errorf("got %v, %v", ts, next)
	}
}
