package analysis

// DefaultMetrics returns the standard set of metrics for device analysis.
func DefaultMetrics() []Metric {
	return []Metric{
		UtilMetric{},
		MemoryMetric{},
		TemperatureMetric{},
		PowerMetric{},
	}
}
