package db

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm sentinel", gorm.ErrDuplicatedKey, true},
		{"wrapped sentinel", fmt.Errorf("create identity: %w", gorm.ErrDuplicatedKey), true},
		{"postgres", errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`), true},
		{"mysql", errors.New("Error 1062 (23000): Duplicate entry 'carol@example.com' for key 'users.email'"), true},
		{"sqlite", errors.New("UNIQUE constraint failed: users.email"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDuplicateKeyErr(tc.err); got != tc.want {
				t.Fatalf("IsDuplicateKeyErr(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
