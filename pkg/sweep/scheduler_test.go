package sweep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduleLifecycle(t *testing.T) {
	h := newHarness(t)

	sch, err := Schedule(h.sweeper, 7, 0, time.UTC)
	require.NoError(t, err)
	require.Len(t, sch.Jobs(), 1)
	require.NoError(t, sch.Shutdown())
}
