package mocks

// Extractor handmade mock for tests.
type Extractor struct {
	UnzipCall struct {
		Received struct {
			Source      string
			Destination string
		}
		Returns struct {
			Error error
		}
	}
}

// Unzip mock method.
func (e *Extractor) Unzip(source, destination string) error {
	e.UnzipCall.Received.Source = source
	e.UnzipCall.Received.Destination = destination

	return e.UnzipCall.Returns.Error
}
