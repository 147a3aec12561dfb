package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("boom")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pq.Error{Code: "23505", Constraint: "picks_member_week_slot_key"}

	t.Run("matches named constraint", func(t *testing.T) {
		if !isUniqueViolation(uniqueErr, "picks_member_week_slot_key") {
			t.Fatal("expected true for matching constraint")
		}
	})

	t.Run("matches any constraint when unnamed", func(t *testing.T) {
		if !isUniqueViolation(uniqueErr, "") {
			t.Fatal("expected true for empty constraint filter")
		}
	})

	t.Run("ignores other constraint", func(t *testing.T) {
		if isUniqueViolation(uniqueErr, "picks_member_player_key") {
			t.Fatal("expected false for different constraint")
		}
	})

	t.Run("ignores wrapped non-unique error", func(t *testing.T) {
		err := fmt.Errorf("insert pick: %w", &pq.Error{Code: "23503"})
		if isUniqueViolation(err, "") {
			t.Fatal("expected false for foreign key violation")
		}
	})

	t.Run("unwraps wrapped unique error", func(t *testing.T) {
		err := fmt.Errorf("insert pick: %w", uniqueErr)
		if !isUniqueViolation(err, "picks_member_week_slot_key") {
			t.Fatal("expected true for wrapped unique violation")
		}
	})
}
