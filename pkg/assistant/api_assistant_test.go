package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/datalens-ai/datalens-engine/pkg/llm"
)

func TestAPIAssistant_SendsThroughClient(t *testing.T) {
	mock := llm.NewMockClient("here are some test suggestions")
	asst := NewAPIAssistant(mock, 5*time.Second, zap.NewNop())

	reply, err := asst.Send(context.Background(), "suggest tests for this data")
	require.NoError(t, err)
	assert.Equal(t, "here are some test suggestions", reply)

	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "suggest tests for this data", mock.Prompts[0])
	assert.NotEmpty(t, mock.SystemMessages[0])
}

func TestAPIAssistant_PropagatesClientError(t *testing.T) {
	mock := llm.NewMockClient("")
	mock.Err = errors.New("invalid api key")
	asst := NewAPIAssistant(mock, 5*time.Second, zap.NewNop())

	_, err := asst.Send(context.Background(), "prompt")
	assert.ErrorContains(t, err, "invalid api key")
	assert.Equal(t, 1, mock.CallCount())
}

func TestAPIAssistant_RetriesTransientErrors(t *testing.T) {
	mock := llm.NewMockClient("")
	mock.Err = errors.New("429 too many requests")
	asst := NewAPIAssistant(mock, 5*time.Second, zap.NewNop())

	_, err := asst.Send(context.Background(), "prompt")
	assert.ErrorContains(t, err, "429")
	assert.Equal(t, 4, mock.CallCount()) // initial attempt + 3 retries
}
