package hw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHardwareSummary(t *testing.T) {
	summary, err := GetHardwareSummary()
	if err != nil {
		t.Skipf("hardware information unavailable: %v", err)
	}

	assert.GreaterOrEqual(t, summary.Threads, summary.Cores)
	assert.NotZero(t, summary.Threads)
}
