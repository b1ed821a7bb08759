package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_Do(t *testing.T) {
	errFail := errors.New("falha")

	tests := []struct {
		name       string
		maxRetries int
		failUntil  int
		wantCalls  int
		wantSleeps []time.Duration
		wantErr    bool
	}{
		{name: "Sucesso na primeira", maxRetries: 2, failUntil: 0, wantCalls: 1, wantSleeps: nil},
		{name: "Sucesso na terceira", maxRetries: 2, failUntil: 2, wantCalls: 3, wantSleeps: []time.Duration{time.Second, 2 * time.Second}},
		{name: "Tentativas esgotadas", maxRetries: 2, failUntil: 10, wantCalls: 3, wantSleeps: []time.Duration{time.Second, 2 * time.Second}, wantErr: true},
		{name: "Sem novas tentativas", maxRetries: 0, failUntil: 10, wantCalls: 1, wantSleeps: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sleeps []time.Duration
			b := NewBackoff(time.Second, tt.maxRetries).WithSleep(func(_ context.Context, d time.Duration) error {
				sleeps = append(sleeps, d)
				return nil
			})

			calls := 0
			err := b.Do(context.Background(), func(i int) error {
				assert.Equal(t, calls, i)
				calls++
				if i < tt.failUntil {
					return errFail
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantSleeps, sleeps)
			if tt.wantErr {
				assert.ErrorIs(t, err, errFail)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBackoff_DoContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := NewBackoff(time.Hour, 3).Do(ctx, func(int) error {
		calls++
		return errors.New("falha")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
