package interfaces

type Executor interface {
	Execute(args ...string) ([]byte, error)
	ExecuteInDirectory(directory string, args ...string) ([]byte, error)
	ExecuteToFile(outputPath, directory string, args ...string) ([]byte, error)
}
