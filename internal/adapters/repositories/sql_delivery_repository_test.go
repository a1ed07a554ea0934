package repositories

import (
	"context"
	"database/sql"
	"delivery-time-service/internal/platform/db"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func seedAndLoad(t *testing.T, conn *sql.DB, dialect db.Dialect) {
	t.Helper()
	ctx := context.Background()

	if err := InitSchema(ctx, conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	want, err := ReadDeliveriesCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	// Seeding twice must replace, not append.
	for i := 0; i < 2; i++ {
		if err := SeedDeliveries(ctx, conn, dialect, want); err != nil {
			t.Fatalf("seed deliveries: %v", err)
		}
	}

	got, err := NewSQLDeliveryRepository(conn).LoadDeliveries(ctx)
	if err != nil {
		t.Fatalf("load deliveries: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSQLiteDeliveryRepositoryRoundTrip(t *testing.T) {
	// A file, not :memory:, so every pooled connection sees the same database.
	conn, err := db.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	seedAndLoad(t, conn, db.DialectSQLite)
}

func TestSeedFromCSV(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "deliveries.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	conn, err := db.OpenSQLite(ctx, filepath.Join(dir, "app.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := InitSchema(ctx, conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	n, err := SeedFromCSV(ctx, conn, db.DialectSQLite, csvPath)
	if err != nil {
		t.Fatalf("seed from csv: %v", err)
	}
	if n != 3 {
		t.Fatalf("seeded %d rows, want 3", n)
	}
}

func TestPostgresDeliveryRepositoryRoundTrip(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	conn, err := db.Open(context.Background(), databaseURL)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	defer conn.Close()

	seedAndLoad(t, conn, db.DialectPostgres)
}
