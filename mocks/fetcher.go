package mocks

// Fetcher handmade mock for tests.
type Fetcher struct {
	FetchCall struct {
		TimesCalled int
		Received    struct {
			ForceRefresh bool
		}
		Returns struct {
			RepoPath string
			Error    error
		}
	}
}

// Fetch mock method.
func (f *Fetcher) Fetch(forceRefresh bool) (string, error) {
	f.FetchCall.TimesCalled++
	f.FetchCall.Received.ForceRefresh = forceRefresh

	return f.FetchCall.Returns.RepoPath, f.FetchCall.Returns.Error
}
