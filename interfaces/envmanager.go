package interfaces

import "github.com/compozed/stackdactyl/structs"

// EnvManager reads and writes .env style key-value files.
type EnvManager interface {
	Read(path string) (map[string]string, error)
	Write(path string, pairs []structs.EnvPair) error
}
