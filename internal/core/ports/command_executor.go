package ports

// CommandExecutor defines an interface for executing external programs.
type CommandExecutor interface {
	Execute(name string, args ...string) (stdout string, stderr string, err error)
}
