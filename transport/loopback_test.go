package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYPER/report"
	"github.com/Alia5/KEYPER/transport"
)

func TestLoopbackSingleSlot(t *testing.T) {
	lb := transport.NewLoopback()
	defer lb.Close()

	var rep report.Input
	rep[2] = 0x04
	require.NoError(t, lb.PushInput(rep))

	var next report.Input
	next[2] = 0x05
	assert.ErrorIs(t, lb.PushInput(next), transport.ErrWouldBlock,
		"endpoint busy until the host reads")

	assert.Equal(t, rep, <-lb.Reports())
	require.NoError(t, lb.PushInput(next))
	assert.Equal(t, next, <-lb.Reports())
}

func TestLoopbackClose(t *testing.T) {
	lb := transport.NewLoopback()
	lb.Close()
	lb.Close() // idempotent

	assert.ErrorIs(t, lb.PushInput(report.Input{}), transport.ErrInvalidState)

	_, ok := <-lb.Reports()
	assert.False(t, ok, "read end is closed")
}
