package draft

import (
	"context"
	"testing"

	"safepath/internal/domain"
)

func TestMemoryStore_GetAbsent_ReturnsNil(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	d, err := store.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if d != nil {
		t.Errorf("expected nil draft for absent user, got %+v", d)
	}
}

func TestMemoryStore_SaveThenGet_RoundTrips(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	d := &domain.Draft{FromAddress: "Siriraj Hospital", ToAddress: "Home"}
	if err := store.Save(ctx, "user-1", d); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	got, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got == nil || got.FromAddress != "Siriraj Hospital" || got.ToAddress != "Home" {
		t.Errorf("unexpected draft: %+v", got)
	}
}

func TestMemoryStore_Get_ReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	d := &domain.Draft{FromAddress: "A", Equipment: []string{"wheelchair"}}
	if err := store.Save(ctx, "user-1", d); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	first, _ := store.Get(ctx, "user-1")
	first.FromAddress = "mutated"
	first.Equipment[0] = "mutated"

	second, _ := store.Get(ctx, "user-1")
	if second.FromAddress != "A" {
		t.Errorf("expected stored draft unchanged, got address %q", second.FromAddress)
	}
	if second.Equipment[0] != "wheelchair" {
		t.Errorf("expected stored equipment unchanged, got %q", second.Equipment[0])
	}
}

func TestMemoryStore_Clear_IsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "user-1", &domain.Draft{FromAddress: "A"}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if err := store.Clear(ctx, "user-1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := store.Clear(ctx, "user-1"); err != nil {
		t.Fatalf("expected clearing an absent draft to be a no-op, got: %v", err)
	}

	d, _ := store.Get(ctx, "user-1")
	if d != nil {
		t.Errorf("expected draft removed, got %+v", d)
	}
}

func TestMemoryStore_DraftsAreIsolatedPerUser(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Save(ctx, "user-1", &domain.Draft{FromAddress: "A"})
	_ = store.Save(ctx, "user-2", &domain.Draft{FromAddress: "B"})

	if err := store.Clear(ctx, "user-1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	d, _ := store.Get(ctx, "user-2")
	if d == nil || d.FromAddress != "B" {
		t.Errorf("expected user-2 draft untouched, got %+v", d)
	}
}
