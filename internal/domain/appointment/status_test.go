package appointment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusResolve(t *testing.T) {
	st := InitialStatus()
	assert.Equal(t, StatusPending, st)
	assert.False(t, st.Terminal())

	assert.Equal(t, StatusDelivered, st.Resolve(nil))
	assert.Equal(t, StatusFailed, st.Resolve(errors.New("timeout")))
}

func TestStatusResolve_TerminalIsFinal(t *testing.T) {
	assert.Equal(t, StatusDelivered, StatusDelivered.Resolve(errors.New("late")))
	assert.Equal(t, StatusFailed, StatusFailed.Resolve(nil))
}
