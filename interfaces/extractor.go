package interfaces

type Extractor interface {
	Unzip(source, destination string) error
}
