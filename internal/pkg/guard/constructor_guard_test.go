package guard_test

import (
	"errors"
	"sync"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("Ticket must be created via NewTicket")

	testCases := []struct {
		name          string
		guard         guard.ConstructorGuard
		validationErr error
		expected      error
	}{
		{
			name:          "constructed_guard_with_custom_error",
			guard:         guard.NewConstructorGuard(),
			validationErr: errNotConstructed,
			expected:      nil,
		},
		{
			name:          "constructed_guard_with_nil_error",
			guard:         guard.NewConstructorGuard(),
			validationErr: nil,
			expected:      nil,
		},
		{
			name:          "zero_value_returns_custom_error",
			guard:         guard.ConstructorGuard{},
			validationErr: errNotConstructed,
			expected:      errNotConstructed,
		},
		{
			name:          "zero_value_falls_back_to_default_error",
			guard:         guard.ConstructorGuard{},
			validationErr: nil,
			expected:      guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When
			err := tc.guard.Validate(tc.validationErr)

			// Then
			if tc.expected == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.expected, err)
		})
	}
}

// TestConstructorGuard_EmbeddedUsage shows the pattern used by domain types: the guard is a
// private field that only the constructor fills in.
func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	errTicketIsNotConstructed := errors.New("Ticket must be created via NewTicket")

	type ticket struct {
		code  string
		guard guard.ConstructorGuard
	}

	newTicket := func(code string) (ticket, error) {
		if code == "" {
			return ticket{}, errors.New("code is required")
		}
		return ticket{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		tk, err := newTicket("BKG1")

		require.NoError(t, err)
		require.NoError(t, tk.guard.Validate(errTicketIsNotConstructed))
		assert.Equal(t, "BKG1", tk.code)
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		tk := ticket{code: "BKG1"}

		err := tk.guard.Validate(errTicketIsNotConstructed)

		require.ErrorIs(t, err, errTicketIsNotConstructed)
	})

	t.Run("copies_stay_constructed", func(t *testing.T) {
		tk, err := newTicket("BKG2")
		require.NoError(t, err)

		cp := tk

		require.NoError(t, cp.guard.Validate(errTicketIsNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				assert.NoError(t, g.Validate(nil))
			}
		}()
	}
	wg.Wait()
}

func TestErrDefaultConstructorGuard_Message(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}
