package diag

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootLogger(t *testing.T) {
	t.Run("should produce json logs", func(t *testing.T) {
		var output bytes.Buffer
		logger := SetupRootLogger(NewRootLoggerOpts().WithJSONLogs(true).WithOutput(&output))
		wantMsg := faker.Sentence()
		logger.Info(wantMsg)

		var record map[string]any
		require.NoError(t, json.Unmarshal(output.Bytes(), &record))
		assert.Equal(t, wantMsg, record["msg"])
		assert.Equal(t, "INFO", record["level"])
	})

	t.Run("should respect log level", func(t *testing.T) {
		var output bytes.Buffer
		logger := SetupRootLogger(NewRootLoggerOpts().WithLogLevel(slog.LevelWarn).WithOutput(&output))
		logger.Info(faker.Sentence())
		assert.Empty(t, output.String())
		logger.Warn(faker.Sentence())
		assert.NotEmpty(t, output.String())
	})

	t.Run("should write to output file", func(t *testing.T) {
		outputFile := filepath.Join(t.TempDir(), "logs.txt")
		logger := SetupRootLogger(NewRootLoggerOpts().WithOptionalOutputFile(outputFile))
		wantMsg := faker.Word()
		logger.Info(wantMsg)
		assert.Contains(t, string(lo.Must(os.ReadFile(outputFile))), wantMsg)
	})

	t.Run("should include context attributes", func(t *testing.T) {
		var output bytes.Buffer
		logger := SetupRootLogger(NewRootLoggerOpts().WithJSONLogs(true).WithOutput(&output))
		wantID := faker.UUIDHyphenated()
		wantName := faker.Word()
		ctx := ContextWithAttrs(context.Background(), slog.String("connectionID", wantID))
		ctx = ContextWithAttrs(ctx, slog.String("clientName", wantName))
		logger.WithGroup("relay").InfoContext(ctx, faker.Sentence())

		var record map[string]any
		require.NoError(t, json.Unmarshal(output.Bytes(), &record))
		group, ok := record["relay"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, wantID, group["connectionID"])
		assert.Equal(t, wantName, group["clientName"])
	})

	t.Run("ErrAttr", func(t *testing.T) {
		err := errors.New(faker.Sentence())
		attr := ErrAttr(err)
		assert.Equal(t, "err", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}
