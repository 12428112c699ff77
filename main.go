package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/256dpi/prereqs/internal/course"
	"github.com/256dpi/prereqs/internal/logging"
)

type cli struct {
	Config      kong.ConfigFlag `help:"Load configuration from a JSON file."`
	LogLevel    string          `help:"The log level (debug, info, warn, error)." default:"info" env:"PREREQS_LOG_LEVEL"`
	LogFormat   string          `help:"The log format (console, json)." default:"console" env:"PREREQS_LOG_FORMAT"`
	MetricsAddr string          `help:"The UI metrics and profile addr, empty to disable." default:":6060" env:"PREREQS_METRICS_ADDR"`

	View  viewCommand  `cmd:"" default:"1" help:"Open the tree viewer window."`
	Print printCommand `cmd:"" help:"Print the tree as text."`
}

type env struct {
	logger      *zap.Logger
	metrics     *course.Metrics
	gatherer    prometheus.Gatherer
	metricsAddr string
	out         io.Writer
}

func main() {
	// parse flags
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("prereqs"),
		kong.Description("Course prerequisite tree viewer."),
		kong.Configuration(kong.JSON, "~/.prereqs.json"),
		kong.UsageOnError(),
	)

	// create logger
	logger := logging.New(c.LogLevel, c.LogFormat, os.Stderr)
	defer logger.Sync()

	// run command
	err := ctx.Run(&env{
		logger:      logger,
		metrics:     course.NewMetrics(prometheus.DefaultRegisterer),
		gatherer:    prometheus.DefaultGatherer,
		metricsAddr: c.MetricsAddr,
		out:         os.Stdout,
	})
	ctx.FatalIfErrorf(err)
}
