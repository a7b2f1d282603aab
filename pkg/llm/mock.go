package llm

import (
	"context"
	"sync"
)

// MockClient is a test double for LLMClient. It records every prompt it
// receives and replays canned responses.
type MockClient struct {
	mu sync.Mutex

	// Response is returned for every call unless Err is set.
	Response string
	// Err, when set, is returned from every call.
	Err error
	// Model is what GetModel reports.
	Model string

	// Prompts records the user prompts passed to GenerateResponse.
	Prompts []string
	// SystemMessages records the system messages passed to GenerateResponse.
	SystemMessages []string
}

// NewMockClient creates a mock that answers every prompt with response.
func NewMockClient(response string) *MockClient {
	return &MockClient{
		Response: response,
		Model:    "mock-model",
	}
}

func (m *MockClient) GenerateResponse(_ context.Context, prompt string, systemMessage string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.SystemMessages = append(m.SystemMessages, systemMessage)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockClient) GetModel() string {
	return m.Model
}

// CallCount returns how many prompts the mock has received.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

var _ LLMClient = (*MockClient)(nil)
