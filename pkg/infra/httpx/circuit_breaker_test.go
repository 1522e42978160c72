package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestNewCircuitBreaker(t *testing.T) {
	breaker := NewCircuitBreaker("classifier", 30*time.Second, 3)

	assert.NotNil(t, breaker)
	assert.IsType(t, &circuitBreakerWrapper{}, breaker)

	wrapper, _ := breaker.(*circuitBreakerWrapper) //nolint:errcheck
	assert.NotNil(t, wrapper.breaker)
	assert.Equal(t, "classifier", wrapper.breaker.Name())
}

func TestCircuitBreakerWrapper_Execute_Success(t *testing.T) {
	breaker := NewCircuitBreaker("success-test", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		return nil
	})

	assert.NoError(t, err)
}

func TestCircuitBreakerWrapper_Execute_Failure(t *testing.T) {
	breaker := NewCircuitBreaker("failure-test", 30*time.Second, 3)
	testError := errors.New("predict endpoint down")

	err := breaker.Execute(func() error {
		return testError
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failure-test")
	assert.Contains(t, err.Error(), testError.Error())
}

func TestCircuitBreakerWrapper_Execute_PanicRecovered(t *testing.T) {
	breaker := NewCircuitBreaker("panic-test", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		panic("boom")
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered:")
}

func TestCircuitBreakerWrapper_Execute_CircuitOpen(t *testing.T) {
	breaker := NewCircuitBreaker("circuit-open-test", 100*time.Millisecond, 1)

	err := breaker.Execute(func() error {
		return errors.New("first failure")
	})
	assert.Error(t, err)

	err = breaker.Execute(func() error {
		return errors.New("second failure")
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}

func TestCircuitBreakerWrapper_Execute_CircuitRecovery(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1)

	err := breaker.Execute(func() error {
		return errors.New("trigger failure")
	})
	assert.Error(t, err)

	time.Sleep(100 * time.Millisecond)

	err = breaker.Execute(func() error {
		return nil
	})
	assert.NoError(t, err)
}

func TestCircuitBreakerWrapper_Execute_StateTransitions(t *testing.T) {
	breaker := NewCircuitBreaker("state-test", 100*time.Millisecond, 2)
	wrapper, _ := breaker.(*circuitBreakerWrapper) //nolint:errcheck

	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())

	for i := 0; i < 2; i++ {
		err := breaker.Execute(func() error {
			return errors.New("failure")
		})
		assert.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, wrapper.breaker.State())

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, wrapper.breaker.State())

	err := breaker.Execute(func() error {
		return nil
	})
	assert.NoError(t, err)
	assert.NotEqual(t, gobreaker.StateOpen, wrapper.breaker.State())
}
