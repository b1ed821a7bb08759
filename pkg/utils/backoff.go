package utils

import (
	"context"
	"time"
)

// Backoff repete uma função com espera exponencial: base, 2*base, 4*base...
type Backoff struct {
	base       time.Duration
	maxRetries int
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewBackoff(base time.Duration, maxRetries int) Backoff {
	return Backoff{base: base, maxRetries: maxRetries, sleep: sleepContext}
}

// WithSleep substitui a espera entre tentativas
func (b Backoff) WithSleep(sleep func(ctx context.Context, d time.Duration) error) Backoff {
	b.sleep = sleep
	return b
}

// Do chama fn até ela retornar nil ou as tentativas acabarem. i começa em 0.
// Não espera depois da última tentativa e para se o contexto for cancelado.
func (b Backoff) Do(ctx context.Context, fn func(i int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		err = fn(i)
		if err == nil {
			return nil
		}
		if i == b.maxRetries {
			break
		}
		if sleepErr := b.sleep(ctx, time.Duration(1<<i)*b.base); sleepErr != nil {
			return err
		}
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
