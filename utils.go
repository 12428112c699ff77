package main

import (
	"image/color"

	"github.com/AllenDang/giu"

	"github.com/256dpi/prereqs/internal/activity"
)

var (
	primaryColor = color.RGBA{R: 74, G: 144, B: 226, A: 255}
	accentColor  = color.RGBA{R: 255, G: 107, B: 107, A: 255}
	warningColor = color.RGBA{R: 230, G: 160, B: 40, A: 255}
)

func newWindow(m *giu.MasterWindow, title string, x, y float32) *giu.WindowWidget {
	// get size
	mw, mh := m.GetSize()

	// create window
	win := giu.Window(title)
	win.Pos(x, y)
	win.Size(float32(mw)*0.6, float32(mh)*0.6)

	return win
}

func levelColor(level activity.Level) color.RGBA {
	switch level {
	case activity.Warning:
		return warningColor
	case activity.Error:
		return accentColor
	default:
		return primaryColor
	}
}

func levelTitle(level activity.Level) string {
	switch level {
	case activity.Warning:
		return "Input Error"
	case activity.Error:
		return "Error"
	default:
		return "Success"
	}
}
