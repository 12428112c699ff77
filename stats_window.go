package main

import (
	"github.com/AllenDang/giu"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/256dpi/prereqs/internal/course"
)

type statsWindow struct {
	gatherer prometheus.Gatherer
	open     bool
}

func (w *statsWindow) draw(m *giu.MasterWindow) {
	// create window
	win := newWindow(m, "Statistics", 60, 60).IsOpen(&w.open)

	// gather stats
	stats, err := course.GatherStats(w.gatherer)
	if err != nil {
		win.Layout(giu.Label(err.Error()))
		return
	}

	// collect rows
	var rows []*giu.TableRowWidget
	for _, stat := range stats {
		stat := stat
		rows = append(rows, giu.TableRow(
			giu.Custom(func() {
				giu.Label(stat.Name).Build()
				giu.Tooltip(stat.Help).Build()
			}),
			giu.Label(stat.Labels),
			giu.Label(humanize.SIWithDigits(stat.Value, 2, "")),
		))
	}

	// draw
	win.Layout(
		giu.Table().Columns(
			giu.TableColumn("Metric").Flags(giu.TableColumnFlagsWidthStretch).InnerWidthOrWeight(2),
			giu.TableColumn("Labels").Flags(giu.TableColumnFlagsWidthStretch).InnerWidthOrWeight(2),
			giu.TableColumn("Value").Flags(giu.TableColumnFlagsWidthFixed).InnerWidthOrWeight(80),
		).Rows(rows...),
	)
}
