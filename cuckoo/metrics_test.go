package cuckoo

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestCollectorReportsSize(t *testing.T) {
	f, err := NewFilter(DefaultConfig(1000))
	require.NoError(t, err)
	require.Equal(t, Ok, f.Add(ItemUint64(1)))
	require.Equal(t, Ok, f.Add(ItemUint64(2)))

	collector := NewCollector(f)
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(collector))

	metrics, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range metrics {
		if mf.GetName() != "cuckoo_filter_size" {
			continue
		}
		found = true
		require.Len(t, mf.Metric, 1)
		require.Equal(t, float64(2), mf.Metric[0].GetGauge().GetValue())
	}
	require.True(t, found, "cuckoo_filter_size metric must be registered")
}
