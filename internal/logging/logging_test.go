package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Options
		wantErr string
	}{
		{in: "", want: Options{Format: FormatJSON}},
		{in: "json", want: Options{Format: FormatJSON}},
		{in: "console", want: Options{Format: FormatConsole}},
		{in: " Console:DEBUG ", want: Options{Format: FormatConsole, Debug: true}},
		{in: "json:info", want: Options{Format: FormatJSON}},
		{in: "xml", wantErr: `unknown log format "xml"`},
		{in: "json:trace", wantErr: `unknown log level "trace"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig(t *testing.T) {
	c := Options{}.Config()
	assert.Equal(t, "json", c.Encoding)
	assert.Equal(t, zapcore.InfoLevel, c.Level.Level())

	c = Options{Format: FormatConsole, Debug: true}.Config()
	assert.Equal(t, "console", c.Encoding)
	assert.Equal(t, zapcore.DebugLevel, c.Level.Level())
}

func TestNew(t *testing.T) {
	logger, err := New(Options{Debug: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
