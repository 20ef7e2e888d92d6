package diag

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Level is the level of loggers made by NewLogger.
var Level = new(slog.LevelVar)

// NewLogger logs text to w, without times and without the level of info
// records. If jsonOut is not nil every record is also written to it as
// JSON.
func NewLogger(w io.Writer, jsonOut io.Writer) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: Level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				if a.Key == slog.LevelKey && a.Value.String() == "INFO" {
					return slog.Attr{}
				}
				return a
			},
		}),
	}
	if jsonOut != nil {
		handlers = append(handlers, slog.NewJSONHandler(jsonOut, &slog.HandlerOptions{Level: Level}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}
