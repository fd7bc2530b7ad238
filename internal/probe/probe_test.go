package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	errDown := errors.New("connection refused")
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errDown }

	tests := []struct {
		name     string
		checks   []Check
		wantName string
	}{
		{name: "no checks"},
		{name: "all healthy", checks: []Check{{"database", ok}, {"cache", ok}}},
		{name: "first failure reported", checks: []Check{{"database", ok}, {"cache", down}, {"other", down}}, wantName: "cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), tt.checks)
			if tt.wantName == "" {
				require.NoError(t, err)
				return
			}

			var checkErr *CheckError
			require.ErrorAs(t, err, &checkErr)
			assert.Equal(t, tt.wantName, checkErr.Name)
			assert.ErrorIs(t, err, errDown)
			assert.Contains(t, err.Error(), `"cache"`)
		})
	}
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	var called bool
	checks := []Check{
		{"database", func(context.Context) error { return errors.New("down") }},
		{"cache", func(context.Context) error { called = true; return nil }},
	}

	require.Error(t, Run(context.Background(), checks))
	assert.False(t, called)
}
