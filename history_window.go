package main

import (
	"github.com/AllenDang/giu"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/256dpi/prereqs/internal/activity"
)

type historyWindow struct {
	history *activity.History
	open    bool
}

func (w *historyWindow) draw(m *giu.MasterWindow) {
	// create window
	win := newWindow(m, "History", 120, 120).IsOpen(&w.open)

	// collect rows, newest first
	rows := lo.Map(lo.Reverse(w.history.Events()), func(event activity.Event, _ int) *giu.TableRowWidget {
		return giu.TableRow(
			giu.Label(humanize.Time(event.Time)),
			giu.Custom(func() {
				giu.PushStyleColor(giu.StyleColorText, levelColor(event.Level))
				giu.Label(event.Level.String()).Build()
				giu.PopStyleColor()
			}),
			giu.Label(event.Message),
		)
	})

	// draw
	win.Layout(
		giu.Table().Columns(
			giu.TableColumn("When").Flags(giu.TableColumnFlagsWidthFixed).InnerWidthOrWeight(120),
			giu.TableColumn("Level").Flags(giu.TableColumnFlagsWidthFixed).InnerWidthOrWeight(80),
			giu.TableColumn("Message").Flags(giu.TableColumnFlagsWidthStretch).InnerWidthOrWeight(1),
		).Rows(rows...),
	)
}
