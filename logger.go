package mdnotebook

import (
	"log/slog"
	"os"

	"github.com/riverfjs/mdnotebook-go/internal/logfields"
)

// Logger 全局日志记录器
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil)).With(logfields.Component("mdnotebook"))

// SetLogger 设置自定义日志记录器; nil silences the package.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		Logger = slog.New(slog.DiscardHandler)
		return
	}
	Logger = logger.With(logfields.Component("mdnotebook"))
}
