package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/KEYPER/debounce"
	th "github.com/Alia5/KEYPER/internal/testing"
	"github.com/Alia5/KEYPER/matrix"
)

func newScanner(h *th.MatrixHarness, deb matrix.Debouncer) *matrix.Scanner {
	return matrix.NewScanner(h.Cols(), h.Rows(), h, deb)
}

func TestScanRawCapturesPressedCells(t *testing.T) {
	h := th.NewMatrixHarness()
	h.Press(0, 0)
	h.Press(3, 5)
	h.Press(13, 2)

	raw := newScanner(h, debounce.New(1)).ScanRaw()

	var expected matrix.Raw
	expected[0][0] = true
	expected[3][5] = true
	expected[13][2] = true
	assert.Equal(t, expected, raw)
}

func TestScanSettleDelays(t *testing.T) {
	h := th.NewMatrixHarness()
	newScanner(h, debounce.New(1)).ScanRaw()

	// One settle after driving and one after releasing each column.
	assert.Equal(t, 2*matrix.Cols, h.DelayCalls)
	assert.Equal(t, uint32(2*matrix.Cols*matrix.SettleDelayMicros), h.DelayMicros)
}

func TestScanAppliesDebounce(t *testing.T) {
	h := th.NewMatrixHarness()
	s := newScanner(h, debounce.New(3))
	h.Press(2, 2)

	// The raw sample is pressed immediately, but the debounced matrix
	// reports the key only once the filter has seen it three times.
	var empty matrix.Debounced
	assert.Equal(t, empty, s.Scan())
	assert.Equal(t, empty, s.Scan())

	m := s.Scan()
	assert.True(t, m[2][2])
}

func TestScanReleaseIsDebouncedToo(t *testing.T) {
	h := th.NewMatrixHarness()
	s := newScanner(h, debounce.New(2))
	h.Press(7, 1)

	s.Scan()
	m := s.Scan()
	assert.True(t, m[7][1])

	h.Release(7, 1)
	m = s.Scan()
	assert.True(t, m[7][1], "release must not propagate before the threshold")
	m = s.Scan()
	assert.False(t, m[7][1])
}
