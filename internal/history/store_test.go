package history

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"default size", 0, DefaultHistorySize},
		{"negative size", -1, DefaultHistorySize},
		{"custom size", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(tt.size)
			assert.Equal(t, tt.expected, s.Size())
			assert.Empty(t, s.Plugins())
		})
	}
}

func TestStoreRegisterOrder(t *testing.T) {
	s := NewStore(10)
	s.Register("cpu", []Item{{Name: "user"}}, true)
	s.Register("network", []Item{{Name: "rx"}}, true)
	s.Register("uptime", nil, false)

	assert.Equal(t, []string{"cpu", "network", "uptime"}, s.Plugins())

	// Re-registering replaces items without changing order
	s.Register("cpu", []Item{{Name: "system"}}, true)
	assert.Equal(t, []string{"cpu", "network", "uptime"}, s.Plugins())
	assert.Equal(t, []Item{{Name: "system"}}, s.Items("cpu"))
	assert.Nil(t, s.Items("missing"))
}

func TestStoreHistoryNilWithoutHistory(t *testing.T) {
	s := NewStore(10)
	s.Register("uptime", nil, false)
	s.Push("uptime", time.Now(), map[string]float64{"seconds": 10})

	assert.Nil(t, s.History("uptime"))
	assert.Nil(t, s.History("unknown"))
	assert.Equal(t, 0, s.Count("uptime"))
}

func TestStorePushAligned(t *testing.T) {
	s := NewStore(10)
	s.Register("cpu", nil, true)

	dates := sampleDates(2)
	s.Push("cpu", dates[0], map[string]float64{"user": 10, "idle": 90})
	s.Push("cpu", dates[1], map[string]float64{"user": 20, "idle": 80})

	table := s.History("cpu")
	require.NotNil(t, table)
	assert.Equal(t, dates, table.Dates())
	assert.Equal(t, []float64{10, 20}, table.Values("user"))
	assert.Equal(t, []float64{90, 80}, table.Values("idle"))
}

func TestStorePushLateSeriesBackfilled(t *testing.T) {
	s := NewStore(10)
	s.Register("network", nil, true)

	dates := sampleDates(3)
	s.Push("network", dates[0], map[string]float64{"eth0_rx": 1})
	s.Push("network", dates[1], map[string]float64{"eth0_rx": 2, "wlan0_rx": 5})
	s.Push("network", dates[2], map[string]float64{"wlan0_rx": 6})

	table := s.History("network")
	require.NotNil(t, table)

	eth := table.Values("eth0_rx")
	wlan := table.Values("wlan0_rx")
	require.Len(t, eth, 3)
	require.Len(t, wlan, 3)

	assert.Equal(t, 2.0, eth[1])
	assert.True(t, math.IsNaN(eth[2]), "missing sample should be NaN")
	assert.True(t, math.IsNaN(wlan[0]), "late series should be back-filled")
	assert.Equal(t, []float64{5, 6}, wlan[1:])
}

func TestStoreRingWraps(t *testing.T) {
	s := NewStore(3)
	s.Register("mem", nil, true)

	dates := sampleDates(5)
	for i, d := range dates {
		s.Push("mem", d, map[string]float64{"percent": float64(i)})
	}

	table := s.History("mem")
	require.NotNil(t, table)
	assert.Equal(t, 3, s.Count("mem"))
	assert.Equal(t, []float64{2, 3, 4}, table.Values("percent"))
	assert.Equal(t, dates[2:], table.Dates())
}

func TestStoreResetHistory(t *testing.T) {
	s := NewStore(10)
	s.Register("cpu", []Item{{Name: "user"}}, true)
	s.Push("cpu", time.Now(), map[string]float64{"user": 1})

	s.ResetHistory("cpu")

	table := s.History("cpu")
	require.NotNil(t, table, "reset keeps the plugin's table, only empties it")
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{DateKey}, table.Keys())
	assert.Equal(t, []Item{{Name: "user"}}, s.Items("cpu"))

	// Unknown plugin is a no-op
	s.ResetHistory("missing")
}

func TestStoreSnapshotIsolated(t *testing.T) {
	s := NewStore(10)
	s.Register("cpu", nil, true)
	s.Push("cpu", time.Now(), map[string]float64{"user": 1})

	table := s.History("cpu")
	s.Push("cpu", time.Now(), map[string]float64{"user": 2})

	assert.Equal(t, 1, table.Len())
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(50)
	s.Register("cpu", nil, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Push("cpu", time.Now(), map[string]float64{fmt.Sprintf("core%d", i%3): float64(i)})
		}(i)
		go func() {
			defer wg.Done()
			if table := s.History("cpu"); table != nil {
				for _, key := range table.Keys()[1:] {
					assert.Len(t, table.Values(key), table.Len())
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, s.Count("cpu"))
}
