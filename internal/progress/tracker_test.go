package progress

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	signals []Signal
}

func (r *recorder) Observe(s Signal) { r.signals = append(r.signals, s) }

func (r *recorder) percents() []uint64 {
	var percents []uint64
	for _, s := range r.signals {
		if s.Kind == SignalProgress {
			percents = append(percents, s.Percent)
		}
	}
	return percents
}

func fakeClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func TestTrackerLifecycle(t *testing.T) {
	rec := &recorder{}
	start := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker(rec, WithTotal(5), WithClock(fakeClock(start, start.Add(90*time.Second))))

	assert.Equal(t, Idle, tracker.State())
	tracker.Start()
	assert.Equal(t, Running, tracker.State())
	tracker.Track(2)
	tracker.Track(2)
	tracker.Track(1)
	tracker.Finish()
	assert.Equal(t, Finished, tracker.State())

	require.Len(t, rec.signals, 5)
	assert.Equal(t, SignalStarted, rec.signals[0].Kind)
	assert.Equal(t, uint64(5), rec.signals[0].Total)
	assert.Equal(t, []uint64{40, 80, 100}, rec.percents())

	finished := rec.signals[4]
	assert.Equal(t, SignalFinished, finished.Kind)
	assert.Equal(t, uint64(5), finished.Processed)
	assert.Equal(t, 90*time.Second, finished.Elapsed)
}

func TestTrackerPercentSignalsAreMonotonic(t *testing.T) {
	rec := &recorder{}
	tracker := NewTracker(rec, WithTotal(1000))
	tracker.Start()
	for _, n := range []uint64{1, 99, 1, 5, 300, 0, 94, 1, 499} {
		tracker.Track(n)
	}
	tracker.Finish()

	percents := rec.percents()
	assert.Equal(t, []uint64{10, 40, 50, 100}, percents)
	for i := 1; i < len(percents); i++ {
		assert.Greater(t, percents[i], percents[i-1])
		assert.Zero(t, percents[i]%PercentStep)
	}
}

func TestTrackerUnknownTotal(t *testing.T) {
	rec := &recorder{}
	tracker := NewTracker(rec)
	tracker.Start()
	tracker.Track(4999)
	tracker.Track(1)
	tracker.Track(100)
	tracker.Track(12_000)
	tracker.Finish()

	var processed []uint64
	for _, s := range rec.signals {
		if s.Kind == SignalProgress {
			processed = append(processed, s.Processed)
			assert.False(t, s.HasTotal)
		}
	}
	assert.Equal(t, []uint64{5000, 17_100}, processed)
}

func TestTrackerNoRetroactiveSignals(t *testing.T) {
	rec := &recorder{}
	tracker := NewTracker(rec, WithTotal(100))
	tracker.Track(35)
	assert.Empty(t, rec.signals, "nothing is emitted before Start")

	tracker.Start()
	tracker.Track(4)
	tracker.Track(1)
	tracker.Finish()
	tracker.Track(60)

	assert.Equal(t, []uint64{40}, rec.percents())
	assert.Equal(t, SignalFinished, rec.signals[len(rec.signals)-1].Kind)
	assert.Equal(t, uint64(100), tracker.Processed())
}

func TestTrackerIgnoresInvalidTransitions(t *testing.T) {
	rec := &recorder{}
	tracker := NewTracker(rec)
	tracker.Finish()
	assert.Equal(t, Idle, tracker.State())

	tracker.Start()
	tracker.Start()
	tracker.Finish()
	tracker.Finish()
	tracker.Start()

	require.Len(t, rec.signals, 2)
	assert.Equal(t, SignalStarted, rec.signals[0].Kind)
	assert.Equal(t, SignalFinished, rec.signals[1].Kind)
}

func TestTrackerEmptyTotal(t *testing.T) {
	rec := &recorder{}
	tracker := NewTracker(rec, WithTotal(0))
	tracker.Start()
	tracker.Track(0)
	tracker.Finish()
	assert.Empty(t, rec.percents())
}

func TestMultiObserverAndLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	rec := &recorder{}
	calls := 0
	tracker := NewTracker(MultiObserver{rec, NewLogObserver(logger), ObserverFunc(func(Signal) { calls++ })}, WithTotal(10))

	tracker.Start()
	tracker.Track(10)
	tracker.Finish()

	assert.Len(t, rec.signals, 3)
	assert.Equal(t, 3, calls)
	assert.Contains(t, buf.String(), "Started work")
	assert.Contains(t, buf.String(), "Progress is 100%")
	assert.Contains(t, buf.String(), "Total items processed: 10")
}
