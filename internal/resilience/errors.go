package resilience

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVariants is returned when CallWithResilience is given no variants.
	ErrNoVariants = errors.New("resilience: no variants to try")

	// ErrInvalidConfig is wrapped by every precondition failure on Config.
	ErrInvalidConfig = errors.New("resilience: invalid config")
)

// Attempt identifies one invocation of the operation.
type Attempt struct {
	Variant string
	Number  int // zero-based within the variant
}

func (a Attempt) String() string {
	return fmt.Sprintf("%s#%d", a.Variant, a.Number)
}

// ExhaustedError is returned when every variant has failed. Err is the error
// from the last attempted variant.
type ExhaustedError struct {
	Variants    []string
	Invocations int
	Last        Attempt
	Err         error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d variants exhausted after %d invocations (last %s): %v",
		len(e.Variants), e.Invocations, e.Last, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}
