package interfaces

import "io"

// Deployer drives the deployment workflow for one project.
type Deployer interface {
	Deploy(out io.Writer) error
	Upgrade(out io.Writer) error
	Restart(out io.Writer) error
	Teardown(out io.Writer, removeVolumes bool) error
}
