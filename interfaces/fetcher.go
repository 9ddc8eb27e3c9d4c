package interfaces

// Fetcher fetches the deployment repository, returning the path it was
// installed to.
type Fetcher interface {
	Fetch(forceRefresh bool) (string, error)
}
