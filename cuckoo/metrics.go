package cuckoo

import "github.com/prometheus/client_golang/prometheus"

// Collector adapts a Filter to prometheus.Collector, exposing its size,
// load factor, byte footprint, and victim occupancy as gauges labeled by
// the filter's instance id.
type Collector struct {
	filter *Filter

	size       *prometheus.Desc
	loadFactor *prometheus.Desc
	bytes      *prometheus.Desc
	victimUsed *prometheus.Desc
}

// NewCollector wraps filter for registration with a prometheus.Registry.
func NewCollector(filter *Filter) *Collector {
	constLabels := prometheus.Labels{"filter_id": filter.ID().String()}
	return &Collector{
		filter: filter,
		size: prometheus.NewDesc(
			"cuckoo_filter_size", "Number of items currently stored.", nil, constLabels),
		loadFactor: prometheus.NewDesc(
			"cuckoo_filter_load_factor", "Items stored divided by bucket count.", nil, constLabels),
		bytes: prometheus.NewDesc(
			"cuckoo_filter_size_bytes", "Table byte footprint.", nil, constLabels),
		victimUsed: prometheus.NewDesc(
			"cuckoo_filter_victim_used", "1 if the overflow victim slot is occupied, else 0.", nil, constLabels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.loadFactor
	ch <- c.bytes
	ch <- c.victimUsed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.filter.Size()))
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, c.filter.LoadFactor())
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.GaugeValue, float64(c.filter.SizeInBytes()))

	victim := 0.0
	if c.filter.victim.used {
		victim = 1.0
	}
	ch <- prometheus.MustNewConstMetric(c.victimUsed, prometheus.GaugeValue, victim)
}
