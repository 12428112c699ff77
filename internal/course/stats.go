package course

import (
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const statsPrefix = "prereqs_"

// Stat is a single counter or gauge sample.
type Stat struct {
	Name   string
	Help   string
	Labels string
	Value  float64
}

// GatherStats collects the counter and gauge samples of this package from g.
func GatherStats(g prometheus.Gatherer) ([]Stat, error) {
	// gather families
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	// convert families
	var stats []Stat
	for _, family := range filterFamilies(families) {
		for _, metric := range family.GetMetric() {
			// get value
			var value float64
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				value = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				value = metric.GetGauge().GetValue()
			case dto.MetricType_UNTYPED:
				value = metric.GetUntyped().GetValue()
			default:
				continue
			}

			// get labels
			pairs := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				pairs = append(pairs, label.GetName()+":"+label.GetValue())
			}

			// add stat
			stats = append(stats, Stat{
				Name:   family.GetName(),
				Help:   family.GetHelp(),
				Labels: strings.Join(pairs, " "),
				Value:  value,
			})
		}
	}

	return stats, nil
}

// WriteStats writes the families of this package from g in the text
// exposition format.
func WriteStats(w io.Writer, g prometheus.Gatherer) error {
	// gather families
	families, err := g.Gather()
	if err != nil {
		return err
	}

	// write families
	for _, family := range filterFamilies(families) {
		_, err = expfmt.MetricFamilyToText(w, family)
		if err != nil {
			return err
		}
	}

	return nil
}

func filterFamilies(families []*dto.MetricFamily) []*dto.MetricFamily {
	// filter families
	var list []*dto.MetricFamily
	for _, family := range families {
		if strings.HasPrefix(family.GetName(), statsPrefix) {
			list = append(list, family)
		}
	}

	// sort families
	sort.Slice(list, func(i, j int) bool {
		return list[i].GetName() < list[j].GetName()
	})

	return list
}
