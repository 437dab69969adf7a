package digipet

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test store / journal
// -------------------------

type testStore struct {
	d   *Digipet
	err error // si != nil, Update falla con este error
}

func (s *testStore) Get(ctx context.Context) (Digipet, error) {
	if s.d == nil {
		return Digipet{}, ErrNoDigipet
	}
	return *s.d, nil
}

func (s *testStore) Set(ctx context.Context, d Digipet) error {
	s.d = &d
	return nil
}

func (s *testStore) Create(ctx context.Context, d Digipet) error {
	if s.d != nil {
		return ErrAlreadyHatched
	}
	s.d = &d
	return nil
}

func (s *testStore) Update(ctx context.Context, fn func(Digipet) Digipet) (Digipet, error) {
	if s.err != nil {
		return Digipet{}, s.err
	}
	if s.d == nil {
		return Digipet{}, ErrNoDigipet
	}
	next := fn(*s.d)
	s.d = &next
	return next, nil
}

func (s *testStore) Delete(ctx context.Context) (Digipet, error) {
	if s.d == nil {
		return Digipet{}, ErrNoDigipet
	}
	d := *s.d
	s.d = nil
	return d, nil
}

type recorded struct {
	action Action
	d      Digipet
}

type testJournal struct {
	entries []recorded
	err     error
}

func (j *testJournal) Record(ctx context.Context, action Action, d Digipet) error {
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, recorded{action: action, d: d})
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	j := &testJournal{}
	svc := NewService(&testStore{}, j, nil)

	if _, err := svc.Get(ctx); !errors.Is(err, ErrNoDigipet) {
		t.Fatalf("expected ErrNoDigipet before hatch, got %v", err)
	}
	if _, err := svc.Ignore(ctx); !errors.Is(err, ErrNoDigipet) {
		t.Fatalf("expected ErrNoDigipet ignoring nothing, got %v", err)
	}

	d, err := svc.Hatch(ctx)
	if err != nil {
		t.Fatalf("hatch: %v", err)
	}
	if d != Initial() {
		t.Fatalf("hatch: got %+v", d)
	}
	if _, err := svc.Hatch(ctx); !errors.Is(err, ErrAlreadyHatched) {
		t.Fatalf("expected ErrAlreadyHatched, got %v", err)
	}

	if d, _ = svc.Walk(ctx); d != (Digipet{Happiness: 60, Nutrition: 45, Discipline: 50}) {
		t.Fatalf("walk: got %+v", d)
	}
	if d, _ = svc.Feed(ctx); d != (Digipet{Happiness: 60, Nutrition: 55, Discipline: 45}) {
		t.Fatalf("feed: got %+v", d)
	}
	if d, _ = svc.Train(ctx); d != (Digipet{Happiness: 55, Nutrition: 55, Discipline: 55}) {
		t.Fatalf("train: got %+v", d)
	}
	if d, _ = svc.Ignore(ctx); d != (Digipet{Happiness: 45, Nutrition: 45, Discipline: 45}) {
		t.Fatalf("ignore: got %+v", d)
	}

	if _, err := svc.Rehome(ctx); err != nil {
		t.Fatalf("rehome: %v", err)
	}
	if _, err := svc.Get(ctx); !errors.Is(err, ErrNoDigipet) {
		t.Fatalf("expected ErrNoDigipet after rehome, got %v", err)
	}

	want := []Action{ActionHatch, ActionWalk, ActionFeed, ActionTrain, ActionIgnore, ActionRehome}
	if len(j.entries) != len(want) {
		t.Fatalf("expected %d journal entries, got %d", len(want), len(j.entries))
	}
	for i, a := range want {
		if j.entries[i].action != a {
			t.Fatalf("entry %d: expected %s, got %s", i, a, j.entries[i].action)
		}
	}
	if j.entries[5].d != (Digipet{Happiness: 45, Nutrition: 45, Discipline: 45}) {
		t.Fatalf("rehome entry should carry last stats, got %+v", j.entries[5].d)
	}
}

func TestService_Set_Clamps(t *testing.T) {
	st := &testStore{}
	svc := NewService(st, nil, nil)

	if err := svc.Set(context.Background(), Digipet{Happiness: -1, Nutrition: 101, Discipline: 7}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if *st.d != (Digipet{Happiness: 0, Nutrition: 100, Discipline: 7}) {
		t.Fatalf("expected clamped digipet, got %+v", *st.d)
	}
}

func TestService_JournalFailure_DoesNotFailAction(t *testing.T) {
	ctx := context.Background()
	st := &testStore{}
	svc := NewService(st, &testJournal{err: errors.New("journal down")}, nil)

	if err := svc.Set(ctx, Digipet{Happiness: 20, Nutrition: 25, Discipline: 30}); err != nil {
		t.Fatalf("set: %v", err)
	}
	d, err := svc.Ignore(ctx)
	if err != nil {
		t.Fatalf("ignore should succeed even if journal fails: %v", err)
	}
	if d != (Digipet{Happiness: 10, Nutrition: 15, Discipline: 20}) {
		t.Fatalf("ignore: got %+v", d)
	}
}

func TestService_StoreError_Propagates(t *testing.T) {
	boom := errors.New("boom")
	j := &testJournal{}
	svc := NewService(&testStore{err: boom}, j, nil)

	if _, err := svc.Feed(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if len(j.entries) != 0 {
		t.Fatalf("failed action must not be journaled")
	}
}
