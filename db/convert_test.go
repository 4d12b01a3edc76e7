package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestConvertError(t *testing.T) {
	other := errors.New("boom")
	tests := map[string]struct {
		input error
		want  error
	}{
		"nil":         {input: nil, want: nil},
		"no rows":     {input: pgx.ErrNoRows, want: ErrNotFound},
		"wrapped":     {input: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: ErrNotFound},
		"unique":      {input: &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "user_roles_user_id_role_key"}, want: ErrDuplicate},
		"foreign key": {input: &pgconn.PgError{Code: pgForeignKeyViolation}, want: ErrNotFound},
		"other pg":    {input: &pgconn.PgError{Code: "23514"}, want: nil},
		"other":       {input: other, want: other},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := convertError(tc.input)
			if tc.want == nil {
				if tc.input != nil && got != tc.input {
					t.Errorf("expected the error to pass through, got %v", got)
				}
				if tc.input == nil && got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDBTeamColor(t *testing.T) {
	c := &DBTeamColor{color: model.COLOR_UNKNOWN}
	v, err := c.TextValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String != "black" {
		t.Errorf("expected unknown colors to be saved as black, got '%s'", v.String)
	}

	c = &DBTeamColor{color: model.COLOR_GREEN}
	v, _ = c.TextValue()
	if v.String != "green" {
		t.Errorf("expected green, got '%s'", v.String)
	}
}
