package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gatehouse/internal/database"
)

func openTestDB(t *testing.T) *VisitorRepo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gatehouse.db")
	db, err := database.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.RunMigrationsWithDB(db, "../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewVisitorRepo(db)
}

func TestCheckInAndListSignedIn(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	first, err := repo.CheckIn(ctx, Visitor{Name: "Ada Lovelace", Host: "Charles", Company: "Analytical Ltd"})
	if err != nil {
		t.Fatalf("check in: %v", err)
	}
	if first.ID == "" || first.SignedInAt.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", first)
	}
	if _, err := repo.CheckIn(ctx, Visitor{Name: "Grace Hopper", Host: "Howard"}); err != nil {
		t.Fatalf("check in: %v", err)
	}

	rows, err := repo.ListSignedIn(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 signed in, got %d", len(rows))
	}
	if rows[0].Name != "Ada Lovelace" {
		t.Fatalf("expected oldest first, got %s", rows[0].Name)
	}
}

func TestCheckOut(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	v, err := repo.CheckIn(ctx, Visitor{Name: "Ada", Host: "Charles"})
	if err != nil {
		t.Fatalf("check in: %v", err)
	}
	if err := repo.CheckOut(ctx, v.ID); err != nil {
		t.Fatalf("check out: %v", err)
	}

	rows, err := repo.ListSignedIn(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected nobody signed in, got %d", len(rows))
	}

	if err := repo.CheckOut(ctx, v.ID); err == nil {
		t.Fatalf("second check-out should fail")
	}
	if err := repo.CheckOut(ctx, "missing"); err == nil {
		t.Fatalf("check-out of unknown visitor should fail")
	}
}

func TestCountToday(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	a, _ := repo.CheckIn(ctx, Visitor{Name: "Ada", Host: "Charles"})
	repo.CheckIn(ctx, Visitor{Name: "Grace", Host: "Howard"})
	if err := repo.CheckOut(ctx, a.ID); err != nil {
		t.Fatalf("check out: %v", err)
	}

	today, signedIn, err := repo.CountToday(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if today != 2 {
		t.Fatalf("expected 2 check-ins today, got %d", today)
	}
	if signedIn != 1 {
		t.Fatalf("expected 1 still in building, got %d", signedIn)
	}
}

func TestRecentHostsDistinctMostRecentFirst(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	base := database.Now()
	repo.CheckIn(ctx, Visitor{Name: "One", Host: "Charles", SignedInAt: base.Add(-3 * time.Minute)})
	repo.CheckIn(ctx, Visitor{Name: "Two", Host: "Howard", SignedInAt: base.Add(-2 * time.Minute)})
	repo.CheckIn(ctx, Visitor{Name: "Three", Host: "Charles", SignedInAt: base})

	hosts, err := repo.RecentHosts(ctx, 10)
	if err != nil {
		t.Fatalf("hosts: %v", err)
	}
	if len(hosts) != 2 {
		t.Fatalf("expected distinct hosts, got %v", hosts)
	}
	if hosts[0] != "Charles" || hosts[1] != "Howard" {
		t.Fatalf("expected most recent host first, got %v", hosts)
	}
}

func TestActivityLog(t *testing.T) {
	repo := openTestDB(t)
	activityRepo := NewActivityRepo(repo.db)
	ctx := context.Background()

	v, err := repo.CheckIn(ctx, Visitor{Name: "Ada", Host: "Charles"})
	if err != nil {
		t.Fatalf("check in: %v", err)
	}
	if err := repo.CheckOut(ctx, v.ID); err != nil {
		t.Fatalf("check out: %v", err)
	}

	events, err := activityRepo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != KindCheckOut || events[1].Kind != KindCheckIn {
		t.Fatalf("expected newest first, got %v then %v", events[0].Kind, events[1].Kind)
	}
	if events[0].VisitorName != "Ada" || events[0].Host != "Charles" {
		t.Fatalf("expected joined visitor fields, got %+v", events[0])
	}
}
