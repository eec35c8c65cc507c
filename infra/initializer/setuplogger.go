package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/invochain/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	infoTxtColor  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

func setupLogger(cfg *config.Log) *slog.Logger {
	slogger := slog.New(newHandler(os.Stdout, cfg))
	slog.SetDefault(slogger)
	return slogger
}

func newHandler(w io.Writer, cfg *config.Log) *log.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05"}
	}
	formatter := log.TextFormatter
	if f, ok := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"logfmt": log.LogfmtFormatter,
		"text":   log.TextFormatter,
	}[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(levelStyles())
	return logger
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	level := func(icon string, color lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().SetString(icon).Bold(true).Padding(0, 1).Foreground(color)
	}
	styles.Levels[log.ErrorLevel] = level("❌", errorTxtColor)
	styles.Levels[log.InfoLevel] = level("ℹ️", infoTxtColor)
	styles.Levels[log.WarnLevel] = level("⚠️", warnTxtColor)
	styles.Levels[log.DebugLevel] = level("🐛", debugTxtColor)

	// Keys the services log on get a colour of their own.
	keys := map[string]lipgloss.AdaptiveColor{
		"error":   errorTxtColor,
		"userID":  infoTxtColor,
		"driver":  infoTxtColor,
		"context": warnTxtColor,
		"prefix":  debugTxtColor,
		"caller":  debugTxtColor,
		"time":    debugTxtColor,
	}
	for k, c := range keys {
		styles.Keys[k] = lipgloss.NewStyle().Foreground(c)
		styles.Values[k] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}
