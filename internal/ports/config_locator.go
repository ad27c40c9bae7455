package ports

// ConfigLocator finds the directory holding tempdial.yaml starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}

type ConfigInitializer interface {
	Init(root string, force bool) error
}
