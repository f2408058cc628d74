package errors

import (
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to convert daily budget: %w",
		fmt.Errorf("%w: -5", ErrNegativeAmount))
	if got := Code(wrapped); got != ErrNegativeAmount.Error() {
		t.Errorf("Code = %q, want %q", got, ErrNegativeAmount.Error())
	}

	if got := Code(fmt.Errorf("disk on fire")); got != ErrInternal.Error() {
		t.Errorf("Code for unknown error = %q, want internal", got)
	}
}
