package mocks

// Executor handmade mock for tests.
type Executor struct {
	ExecuteCall struct {
		Received struct {
			Args []string
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}

	ExecuteInDirectoryCall struct {
		Received struct {
			Directory string
			Args      []string
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}

	ExecuteToFileCall struct {
		Received struct {
			OutputPath string
			Directory  string
			Args       []string
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}
}

// Execute mock method.
func (e *Executor) Execute(args ...string) ([]byte, error) {
	e.ExecuteCall.Received.Args = args

	return e.ExecuteCall.Returns.Output, e.ExecuteCall.Returns.Error
}

// ExecuteInDirectory mock method.
func (e *Executor) ExecuteInDirectory(directory string, args ...string) ([]byte, error) {
	e.ExecuteInDirectoryCall.Received.Directory = directory
	e.ExecuteInDirectoryCall.Received.Args = args

	return e.ExecuteInDirectoryCall.Returns.Output, e.ExecuteInDirectoryCall.Returns.Error
}

// ExecuteToFile mock method.
func (e *Executor) ExecuteToFile(outputPath, directory string, args ...string) ([]byte, error) {
	e.ExecuteToFileCall.Received.OutputPath = outputPath
	e.ExecuteToFileCall.Received.Directory = directory
	e.ExecuteToFileCall.Received.Args = args

	return e.ExecuteToFileCall.Returns.Output, e.ExecuteToFileCall.Returns.Error
}
