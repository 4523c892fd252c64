package auth_test

import (
	"context"
	"errors"
	"testing"

	"solsite/auth"
	"solsite/test/infra"
)

func TestPGRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test, requires docker")
	}

	ctx := context.Background()

	container, dsn, err := infra.StartPostgres16(ctx)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	pool, err := infra.SetupDatabase(ctx, dsn)
	if err != nil {
		t.Fatalf("setup database: %v", err)
	}
	t.Cleanup(pool.Close)

	repo := auth.NewRepository(pool)

	account, err := repo.CreateAccount(ctx, auth.CreateAccountParams{
		Email:        "ann@example.com",
		Name:         "Ann",
		PasswordHash: "hashed",
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if account.ID == "" {
		t.Fatal("expected generated id")
	}
	if account.IsAdmin {
		t.Fatal("new accounts must not be admins")
	}

	if _, err := repo.CreateAccount(ctx, auth.CreateAccountParams{
		Email:        "ann@example.com",
		Name:         "Other",
		PasswordHash: "hashed",
	}); !errors.Is(err, auth.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	got, err := repo.GetByEmail(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != account.ID {
		t.Fatalf("expected account %s, got %s", account.ID, got.ID)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, auth.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	// promotion happens out of band, the repository only reads the flag
	if _, err := pool.Exec(ctx, `UPDATE users SET is_admin = TRUE WHERE id = $1`, account.ID); err != nil {
		t.Fatalf("promote: %v", err)
	}

	isAdmin, err := repo.IsAdmin(ctx, account.ID)
	if err != nil {
		t.Fatalf("is admin: %v", err)
	}
	if !isAdmin {
		t.Fatal("expected admin flag to be read fresh from the table")
	}

	if _, err := repo.IsAdmin(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, auth.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound for unknown id, got %v", err)
	}
}
