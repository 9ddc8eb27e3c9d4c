package structs

// EnvPair is a single KEY=value entry of an environment file. Writes keep
// the order the pairs were given in.
type EnvPair struct {
	Key   string
	Value string
}
