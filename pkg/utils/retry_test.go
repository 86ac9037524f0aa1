package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	transient := errors.New("transient")
	fatal := errors.New("fatal")

	testCases := []struct {
		name      string
		cfg       utils.RetryConfig
		results   []error
		permanent []error
		wantErr   error
		wantCalls int
	}{
		{
			name:      "success on first attempt",
			cfg:       utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "success after transient errors",
			cfg:       utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
			results:   []error{transient, transient, nil},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			cfg:       utils.RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond},
			results:   []error{transient, transient, nil},
			wantErr:   transient,
			wantCalls: 2,
		},
		{
			name:      "permanent error stops immediately",
			cfg:       utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
			results:   []error{fatal, nil},
			permanent: []error{fatal},
			wantErr:   fatal,
			wantCalls: 1,
		},
		{
			name: "retry only matching errors",
			cfg: utils.RetryConfig{
				MaxAttempts:  3,
				InitialDelay: time.Millisecond,
				RetryIf:      func(err error) bool { return errors.Is(err, transient) },
			},
			results:   []error{transient, fatal, nil},
			wantErr:   fatal,
			wantCalls: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := utils.Retry(tc.cfg, func() error {
				res := tc.results[calls]
				calls++
				return res
			}, tc.permanent...)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}
