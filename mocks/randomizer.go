package mocks

// Randomizer handmade mock for tests.
type Randomizer struct {
	HexStringCall struct {
		TimesCalled int
		Received    struct {
			Length int
		}
		Returns struct {
			// Values are returned one per call; the last repeats.
			Values []string
		}
	}
}

// HexString mock method.
func (r *Randomizer) HexString(length int) string {
	r.HexStringCall.Received.Length = length

	values := r.HexStringCall.Returns.Values
	if len(values) == 0 {
		r.HexStringCall.TimesCalled++
		return ""
	}

	index := r.HexStringCall.TimesCalled
	if index >= len(values) {
		index = len(values) - 1
	}
	r.HexStringCall.TimesCalled++
	return values[index]
}
