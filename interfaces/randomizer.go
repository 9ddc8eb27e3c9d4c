package interfaces

type Randomizer interface {
	HexString(length int) string
}
