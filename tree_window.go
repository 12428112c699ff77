package main

import (
	"fmt"

	"github.com/AllenDang/giu"
	"github.com/dustin/go-humanize"

	"github.com/256dpi/prereqs/internal/activity"
	"github.com/256dpi/prereqs/internal/course"
	"github.com/256dpi/prereqs/internal/editor"
)

type treeWindow struct {
	editor  *editor.Editor
	stats   *statsWindow
	history *historyWindow
}

func (w *treeWindow) draw(m *giu.MasterWindow) {
	// get size
	_, height := m.GetSize()

	giu.SingleWindowWithMenuBar().Layout(
		// add menu bar
		giu.MenuBar().Layout(
			giu.Menu("View").Layout(
				giu.MenuItem("Statistics").OnClick(func() {
					w.stats.open = true
				}),
				giu.MenuItem("History").OnClick(func() {
					w.history.open = true
				}),
			),
		),

		// add title
		giu.Custom(func() {
			giu.PushStyleColor(giu.StyleColorText, primaryColor)
			giu.Label("Course Prerequisite Tree").Build()
			giu.PopStyleColor()
		}),

		// add tree
		giu.Child().Border(true).Size(-1, float32(height)-220).Layout(
			nodeWidget(w.editor.Tree().Root(), 0),
		),

		// add inputs
		giu.Row(
			giu.Label("Course:       "),
			giu.InputText(&w.editor.Course).Size(400),
		),
		giu.Row(
			giu.Label("Prerequisite: "),
			giu.InputText(&w.editor.Prerequisite).Size(400),
		),

		// add buttons
		giu.Row(
			giu.Button("Add Prerequisite").OnClick(func() {
				w.notify(w.editor.Add())
			}),
			giu.Button("Remove Course").OnClick(func() {
				w.notify(w.editor.Remove())
			}),
			giu.Button("Clear All").OnClick(w.confirmClear),
		),

		// add status
		giu.Custom(w.drawStatus),

		// prepare dialogs
		giu.PrepareMsgbox(),
	)
}

func (w *treeWindow) drawStatus() {
	// get tree
	tree := w.editor.Tree()

	// draw summary
	giu.Label(fmt.Sprintf("%s courses, %s nodes, modified %s",
		humanize.Comma(int64(len(tree.Courses()))),
		humanize.Comma(int64(tree.Size())),
		humanize.Time(tree.Modified()),
	)).Build()

	// draw last event
	event, ok := w.editor.History().Last()
	if ok {
		giu.PushStyleColor(giu.StyleColorText, levelColor(event.Level))
		giu.Label(event.Message).Build()
		giu.PopStyleColor()
	}
}

func (w *treeWindow) notify(event activity.Event) {
	giu.Msgbox(levelTitle(event.Level), event.Message)
}

func (w *treeWindow) confirmClear() {
	giu.Msgbox("Confirm Clear", "Are you sure you want to clear all courses?").
		Buttons(giu.MsgboxButtonsYesNo).
		ResultCallback(func(result giu.DialogResult) {
			if result == giu.DialogResultYes {
				w.notify(w.editor.Clear())
			}
		})
}

func nodeWidget(node *course.Node, index int) giu.Widget {
	// prepare flags
	flags := giu.TreeNodeFlagsDefaultOpen | giu.TreeNodeFlagsSpanAvailWidth
	if node.IsLeaf() {
		flags |= giu.TreeNodeFlagsLeaf
	}

	// build children
	children := node.Children()
	layout := make(giu.Layout, 0, len(children))
	for i, child := range children {
		layout = append(layout, nodeWidget(child, i))
	}

	// labels may repeat among siblings
	return giu.TreeNode(fmt.Sprintf("%s##%d", node.Label(), index)).Flags(flags).Layout(layout...)
}
