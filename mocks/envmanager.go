package mocks

import "github.com/compozed/stackdactyl/structs"

// EnvManager handmade mock for tests.
type EnvManager struct {
	ReadCall struct {
		TimesCalled int
		Received    struct {
			Paths []string
		}
		Returns struct {
			Vars  map[string]string
			Error error
		}
	}

	WriteCall struct {
		TimesCalled int
		Received    struct {
			Paths []string
			Pairs [][]structs.EnvPair
		}
		Returns struct {
			Error error
		}
	}
}

// Read mock method.
func (m *EnvManager) Read(path string) (map[string]string, error) {
	m.ReadCall.TimesCalled++
	m.ReadCall.Received.Paths = append(m.ReadCall.Received.Paths, path)

	return m.ReadCall.Returns.Vars, m.ReadCall.Returns.Error
}

// Write mock method. Pairs accumulates one slice per call.
func (m *EnvManager) Write(path string, pairs []structs.EnvPair) error {
	m.WriteCall.TimesCalled++
	m.WriteCall.Received.Paths = append(m.WriteCall.Received.Paths, path)
	m.WriteCall.Received.Pairs = append(m.WriteCall.Received.Pairs, pairs)

	return m.WriteCall.Returns.Error
}
