package core

import (
	"errors"
	"fmt"
	"io"
	"sort"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/prometheus/common/model"
)

var ErrMissingTimestamp = errors.New("sample has no timestamp")

// ExpositionOptions selects which metric families become line series.
// An empty Metrics list keeps every counter, gauge and untyped family.
type ExpositionOptions struct {
	Metrics []string
}

// ReadExposition builds a Dataset from Prometheus text exposition with
// timestamped samples, e.g. several scrapes concatenated into one file.
// Every label set becomes a line series; the sorted union of sample
// timestamps becomes the x series. Each series must have a sample at every
// timestamp.
func ReadExposition(r io.Reader, opts ExpositionOptions) (*Dataset, error) {
	parser := expfmt.NewTextParser(model.UTF8Validation)
	families, err := parser.TextToMetricFamilies(r)
	if err != nil {
		return nil, fmt.Errorf("parse exposition: %w", err)
	}

	names := opts.Metrics
	if len(names) == 0 {
		for name := range families {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	type series struct {
		id      string
		samples map[int64]float64
	}
	var (
		all    []*series
		byID   = make(map[string]*series)
		stamps = make(map[int64]struct{})
	)
	for _, name := range names {
		fam, ok := families[name]
		if !ok {
			return nil, fmt.Errorf("metric %q not found in exposition", name)
		}
		for _, m := range fam.GetMetric() {
			value, ok := sampleValue(fam.GetType(), m)
			if !ok {
				continue
			}
			if m.TimestampMs == nil {
				return nil, fmt.Errorf("%w: %s", ErrMissingTimestamp, name)
			}
			id := seriesID(name, m.GetLabel())
			s, ok := byID[id]
			if !ok {
				s = &series{id: id, samples: make(map[int64]float64)}
				byID[id] = s
				all = append(all, s)
			}
			ts := m.GetTimestampMs()
			s.samples[ts] = value
			stamps[ts] = struct{}{}
		}
	}

	xs := make([]int64, 0, len(stamps))
	for ts := range stamps {
		xs = append(xs, ts)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })

	ds := &Dataset{
		Types:  map[string]SeriesType{"x": SeriesX},
		Names:  make(map[string]string),
		Colors: make(map[string]string),
	}
	x := Column{ID: "x", Values: make([]float64, len(xs))}
	for i, ts := range xs {
		x.Values[i] = float64(ts)
	}
	ds.Columns = append(ds.Columns, x)

	for i, s := range all {
		col := Column{ID: s.id, Values: make([]float64, len(xs))}
		for j, ts := range xs {
			v, ok := s.samples[ts]
			if !ok {
				return nil, fmt.Errorf("%w: %s has no sample at %d", ErrLengthMismatch, s.id, ts)
			}
			col.Values[j] = v
		}
		ds.Columns = append(ds.Columns, col)
		ds.Types[s.id] = SeriesLine
		ds.Names[s.id] = s.id
		ds.Colors[s.id] = HexColor(Palette[i%len(Palette)])
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	return ds, nil
}

func sampleValue(t dto.MetricType, m *dto.Metric) (float64, bool) {
	switch t {
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), true
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), true
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue(), true
	default:
		return 0, false
	}
}

func seriesID(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	ls := make(model.LabelSet, len(labels))
	for _, lp := range labels {
		ls[model.LabelName(lp.GetName())] = model.LabelValue(lp.GetValue())
	}
	return name + ls.String()
}
