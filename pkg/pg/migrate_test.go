package pg

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrate_Preconditions(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	err := Migrate(context.Background(), nil, Config{}, log)
	assert.ErrorIs(t, err, ErrFailedToApplyMigrations)
	assert.ErrorIs(t, err, ErrMigrationPathNotProvided)

	err = Migrate(context.Background(), nil, Config{MigrationsPath: "testdata/missing"}, log)
	assert.ErrorIs(t, err, ErrMigrationsDirNotFound)
}

func TestGooseLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	l := gooseLogger{ctx: context.Background(), log: slog.New(slog.NewTextHandler(buf, nil))}

	l.Printf("OK   %s (%d)", "00001_fixture_tables.sql", 3)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "00001_fixture_tables.sql (3)")

	buf.Reset()
	l.Fatalf("failed: %v", "boom")
	assert.Contains(t, buf.String(), "level=ERROR")
}
