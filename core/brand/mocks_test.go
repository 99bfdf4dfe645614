package brand

import "sync"

type logCall struct {
	msg    string
	fields map[string]interface{}
}

// mockLogger records debug calls
type mockLogger struct {
	mu    sync.Mutex
	debug []logCall
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debug = append(m.debug, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
