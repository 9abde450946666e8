//go:build go1.21

package slog

import (
	"bytes"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/csvfield"
)

func TestSlogLoggerStableAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{
		Level: stdslog.LevelDebug,
		ReplaceAttr: func(_ []string, a stdslog.Attr) stdslog.Attr {
			if a.Key == stdslog.TimeKey {
				return stdslog.Attr{}
			}
			return a
		},
	})
	l := Logger{L: stdslog.New(h)}

	l.Debug("field too large", csvfield.Fields{"size": 9, "field": "list", "limit": 4})
	require.Equal(t, "level=DEBUG msg=\"field too large\" field=list limit=4 size=9\n", buf.String())

	buf.Reset()
	l.Warn("lossy", nil)
	require.Equal(t, "level=WARN msg=lossy\n", buf.String())
}
