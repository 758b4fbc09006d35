package ports

// FileFinder defines the contract for finding a file, like the settings file.
type FileFinder interface {
	Find() (string, error)
}
