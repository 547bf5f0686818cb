package sqlite

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/gestionpagos/billing-system/internal/core/domain"
	"github.com/gestionpagos/billing-system/internal/core/ports"
)

var dbSeq atomic.Int64

// testDB opens a fresh named in-memory database with the schema applied.
// Each test gets its own database; a single connection keeps it alive.
func testDB(t *testing.T) *bun.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := Connect(context.Background(), Config{DSN: dsn})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(context.Background(), db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestClientRepository_CreateAndList(t *testing.T) {
	db := testDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ana")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}

	clients, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "Ana" || clients[0].ID != created.ID {
		t.Fatalf("unexpected clients: %+v", clients)
	}
}

func TestClientRepository_UpdateName(t *testing.T) {
	db := testDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ana")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.UpdateName(ctx, created.ID, "Anabel")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Anabel" || updated.ID != created.ID {
		t.Fatalf("unexpected row: %+v", updated)
	}

	if _, err := repo.UpdateName(ctx, 999, "Nadie"); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientRepository_DeleteCascades(t *testing.T) {
	db := testDB(t)
	clients := NewClientRepository(db)
	jobs := NewJobRepository(db)
	ctx := context.Background()

	ana, err := clients.Create(ctx, "Ana")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	benito, err := clients.Create(ctx, "Benito")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	for _, clientID := range []int64{ana.ID, ana.ID, benito.ID} {
		if _, err := jobs.Create(ctx, &domain.Job{Description: "trabajo", ClientID: clientID}); err != nil {
			t.Fatalf("create job: %v", err)
		}
	}

	if err := clients.Delete(ctx, ana.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	orphans, err := jobs.Filter(ctx, ports.JobFilter{ClientID: ana.ID})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(orphans) != 0 {
		t.Fatalf("expected cascade to remove jobs, got %+v", orphans)
	}

	remaining, err := jobs.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ClientID != benito.ID {
		t.Fatalf("other clients' jobs must survive: %+v", remaining)
	}

	if err := clients.Delete(ctx, ana.ID); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestJobRepository_Create_RequiresClient(t *testing.T) {
	db := testDB(t)
	jobs := NewJobRepository(db)
	ctx := context.Background()

	if _, err := jobs.Create(ctx, &domain.Job{Description: "trabajo", ClientID: 42}); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestJobRepository_Filter(t *testing.T) {
	db := testDB(t)
	clients := NewClientRepository(db)
	jobs := NewJobRepository(db)
	ctx := context.Background()

	ana, err := clients.Create(ctx, "Ana")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	mk := func(finished, paid bool) {
		job, err := jobs.Create(ctx, &domain.Job{Description: "trabajo", ClientID: ana.ID})
		if err != nil {
			t.Fatalf("create job: %v", err)
		}
		if finished {
			if _, err := jobs.SetFinished(ctx, job.ID, true); err != nil {
				t.Fatalf("set finished: %v", err)
			}
		}
		if paid {
			if _, err := jobs.SetPaid(ctx, job.ID, true); err != nil {
				t.Fatalf("set paid: %v", err)
			}
		}
	}
	mk(true, false)
	mk(true, true)
	mk(false, false)

	yes, no := true, false

	all, err := jobs.Filter(ctx, ports.JobFilter{ClientID: ana.ID})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(all))
	}

	finishedUnpaid, err := jobs.Filter(ctx, ports.JobFilter{ClientID: ana.ID, Finished: &yes, Paid: &no})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(finishedUnpaid) != 1 || !finishedUnpaid[0].Finished || finishedUnpaid[0].Paid {
		t.Fatalf("unexpected result: %+v", finishedUnpaid)
	}

	again, err := jobs.Filter(ctx, ports.JobFilter{ClientID: ana.ID, Finished: &yes, Paid: &no})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(again) != 1 || again[0].ID != finishedUnpaid[0].ID {
		t.Fatalf("filter not stable across calls")
	}
}

func TestJobRepository_UpdateAndDelete(t *testing.T) {
	db := testDB(t)
	clients := NewClientRepository(db)
	jobs := NewJobRepository(db)
	ctx := context.Background()

	ana, err := clients.Create(ctx, "Ana")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	job, err := jobs.Create(ctx, &domain.Job{Description: "pintar", ClientID: ana.ID})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	updated, err := jobs.UpdateDescription(ctx, job.ID, "pintar y lijar")
	if err != nil {
		t.Fatalf("update description: %v", err)
	}
	if updated.Description != "pintar y lijar" {
		t.Fatalf("unexpected description: %q", updated.Description)
	}

	if _, err := jobs.UpdateDescription(ctx, 999, "algo"); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}

	if err := jobs.Delete(ctx, job.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := jobs.Delete(ctx, job.ID); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestAuthRepository_CreateAndFind(t *testing.T) {
	db := testDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Name: "alicia", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}

	found, err := repo.FindByName(ctx, "alicia")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != created.ID || found.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", found)
	}

	if _, err := repo.FindByName(ctx, "nadie"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthRepository_DuplicateName(t *testing.T) {
	db := testDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Name: "alicia", PasswordHash: "hash"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.User{Name: "alicia", PasswordHash: "hash2"}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestActivityRepository_InsertAndListRecent(t *testing.T) {
	db := testDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repo.Insert(ctx, &domain.Activity{
			Entity:    domain.EntityClient,
			EntityID:  int64(i + 1),
			Action:    domain.ActionCreate,
			Actor:     "ana",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	recent, err := repo.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(recent))
	}
	// Newest first.
	if recent[0].EntityID != 5 || recent[2].EntityID != 3 {
		t.Fatalf("unexpected order: %+v", recent)
	}
}
