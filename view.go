package main

import (
	"net/http"
	"net/http/pprof"

	"github.com/AllenDang/giu"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/256dpi/prereqs/internal/activity"
	"github.com/256dpi/prereqs/internal/course"
	"github.com/256dpi/prereqs/internal/editor"
)

type viewCommand struct {
	Width   int `help:"The initial window width." default:"1000"`
	Height  int `help:"The initial window height." default:"700"`
	History int `help:"The number of remembered actions." default:"50"`
}

func (c *viewCommand) Run(e *env) error {
	// run prometheus and pprof profile endpoint
	if e.metricsAddr != "" {
		go serveMetrics(e.metricsAddr, e.logger)
	}

	// create editor
	tree := course.NewTree(e.logger.Named("tree"), e.metrics)
	edt := editor.New(tree, activity.NewHistory(c.History), e.logger)

	// create window
	mw := giu.NewMasterWindow("Course Prerequisite Tree Viewer", c.Width, c.Height, 0)

	// prepare windows
	stats := &statsWindow{gatherer: e.gatherer}
	history := &historyWindow{history: edt.History()}
	tw := &treeWindow{
		editor:  edt,
		stats:   stats,
		history: history,
	}

	// log
	e.logger.Info("viewer started", zap.Int("courses", len(tree.Courses())))

	// run ui code
	mw.Run(func() {
		// background
		gl.ClearColor(248.0/255.0, 250.0/255.0, 252.0/255.0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		// draw windows
		tw.draw(mw)
		if stats.open {
			stats.draw(mw)
		}
		if history.open {
			history.draw(mw)
		}
	})

	return nil
}

func serveMetrics(addr string, logger *zap.Logger) {
	// prepare mux
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/profile", pprof.Profile)

	// serve
	logger.Info("serving metrics", zap.String("addr", addr))
	err := http.ListenAndServe(addr, mux)
	if err != nil {
		logger.Error("metrics server failed", zap.Error(err))
	}
}
