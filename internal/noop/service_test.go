package noop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Info(s string) { r.messages = append(r.messages, s) }

func Test_Service(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	service := New("health server", logger)

	assert.Equal(t, "health server (disabled)", service.String())

	runError, err := service.Start(context.Background())
	assert.Nil(t, runError)
	assert.NoError(t, err)
	assert.Equal(t, []string{"health server is disabled"}, logger.messages)

	assert.NoError(t, service.Stop())
}
