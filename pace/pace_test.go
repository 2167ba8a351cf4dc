package pace_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebfs/pace"
)

// TestPresets_Monotonic verifies fast < normal < slow and the default.
func TestPresets_Monotonic(t *testing.T) {
	ps := pace.Presets()
	require.Len(t, ps, 3)
	for i := 1; i < len(ps); i++ {
		assert.Less(t, ps[i-1].Interval(), ps[i].Interval(), "%v vs %v", ps[i-1], ps[i])
	}
	assert.Equal(t, pace.Normal, pace.DefaultPreset)
	assert.Equal(t, 100*time.Millisecond, pace.DefaultPreset.Interval())
	assert.Equal(t, pace.Normal.Interval(), pace.Preset(42).Interval(), "unknown falls back")
}

// TestParsePreset covers known names, the empty default and unknown names.
func TestParsePreset(t *testing.T) {
	cases := []struct {
		in      string
		want    pace.Preset
		wantErr bool
	}{
		{"fast", pace.Fast, false},
		{"Normal", pace.Normal, false},
		{" slow ", pace.Slow, false},
		{"", pace.Normal, false},
		{"ludicrous", pace.Normal, true},
	}
	for _, tc := range cases {
		got, err := pace.ParsePreset(tc.in)
		assert.Equal(t, tc.want, got, "ParsePreset(%q)", tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, pace.ErrUnknownPreset)
		} else {
			assert.NoError(t, err)
		}
	}
	for _, p := range pace.Presets() {
		back, err := pace.ParsePreset(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
}

// TestTicker_SpacesSteps checks that consecutive Awaits are at least one
// interval apart, the first one measured from creation.
func TestTicker_SpacesSteps(t *testing.T) {
	const interval = 15 * time.Millisecond
	created := time.Now()
	tk := pace.NewTicker(interval)
	assert.Equal(t, interval, tk.Interval())

	ctx := context.Background()
	require.NoError(t, tk.Await(ctx))
	first := time.Now()
	assert.GreaterOrEqual(t, first.Sub(created), interval)

	require.NoError(t, tk.Await(ctx))
	assert.GreaterOrEqual(t, time.Since(first), interval)
}

// TestTicker_NoAccumulatedBurst ensures a slow consumer does not get
// several back-to-back steps afterwards.
func TestTicker_NoAccumulatedBurst(t *testing.T) {
	const interval = 10 * time.Millisecond
	tk := pace.NewTicker(interval)
	time.Sleep(5 * interval)

	ctx := context.Background()
	require.NoError(t, tk.Await(ctx)) // overdue, resolves at once
	mark := time.Now()
	require.NoError(t, tk.Await(ctx))
	assert.GreaterOrEqual(t, time.Since(mark), interval)
}

// TestTicker_Cancellation verifies Await returns promptly on a cancelled context.
func TestTicker_Cancellation(t *testing.T) {
	tk := pace.NewTicker(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	start := time.Now()
	err := tk.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)

	// Already cancelled: no wait at all, even with a zero interval.
	assert.ErrorIs(t, pace.NewTicker(0).Await(ctx), context.Canceled)
}

// TestImmediate never blocks and still reports cancellation.
func TestImmediate(t *testing.T) {
	s := pace.Immediate()
	assert.NoError(t, s.Await(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Await(ctx), context.Canceled)
}

// TestForPreset wires the preset interval into the ticker.
func TestForPreset(t *testing.T) {
	assert.Equal(t, pace.Slow.Interval(), pace.ForPreset(pace.Slow).Interval())
}
