package analysis

import (
	"math"

	"github.com/ijuttt/nvview/internal/model"
)

// TimePoint represents a single point in a time-series.
type TimePoint struct {
	SampleIndex int
	Value       float64
}

// Timeline represents a time-series of metric values across samples.
type Timeline struct {
	MetricName string
	MetricUnit string
	Points     []TimePoint
	Missing    int // samples where the device was absent or the reading N/A
	MinValue   float64
	MaxValue   float64
}

// BuildTimeline extracts one device's time-series from a dump using the
// given metric. Unavailable readings are skipped and counted in Missing.
func BuildTimeline(dump *model.Dump, deviceIndex int, metric Metric) Timeline {
	if dump == nil || len(dump.Samples) == 0 {
		return Timeline{}
	}

	tl := Timeline{
		MetricName: metric.Name(),
		MetricUnit: metric.Unit(),
		Points:     make([]TimePoint, 0, len(dump.Samples)),
		MinValue:   math.Inf(1),
		MaxValue:   math.Inf(-1),
	}

	for i := range dump.Samples {
		dev := findDevice(&dump.Samples[i], deviceIndex)
		if dev == nil {
			tl.Missing++
			continue
		}
		val, ok := metric.Extract(dev)
		if !ok {
			tl.Missing++
			continue
		}

		tl.MinValue = math.Min(tl.MinValue, val)
		tl.MaxValue = math.Max(tl.MaxValue, val)
		tl.Points = append(tl.Points, TimePoint{SampleIndex: i, Value: val})
	}

	if len(tl.Points) == 0 {
		tl.MinValue, tl.MaxValue = 0, 0
	}
	return tl
}

// Values returns the point values in sample order.
func (tl Timeline) Values() []float64 {
	vals := make([]float64, len(tl.Points))
	for i, p := range tl.Points {
		vals[i] = p.Value
	}
	return vals
}

// PointIndex returns the position of the given sample in Points, or -1.
func (tl Timeline) PointIndex(sampleIdx int) int {
	for i, p := range tl.Points {
		if p.SampleIndex == sampleIdx {
			return i
		}
	}
	return -1
}

// BuildUtilTimeline is a convenience function for GPU utilization.
func BuildUtilTimeline(dump *model.Dump, deviceIndex int) Timeline {
	return BuildTimeline(dump, deviceIndex, UtilMetric{})
}

// BuildMemoryTimeline is a convenience function for memory usage.
func BuildMemoryTimeline(dump *model.Dump, deviceIndex int) Timeline {
	return BuildTimeline(dump, deviceIndex, MemoryMetric{})
}

func findDevice(s *model.Sample, index int) *model.DeviceEntry {
	for i := range s.Devices {
		if s.Devices[i].Index == index {
			return &s.Devices[i]
		}
	}
	return nil
}
