package store

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithDir sets the directory holding the snapshot document.
func WithDir(dir string) Option {
	return func(s *FileStore) {
		if dir != "" {
			s.dir = dir
		}
	}
}

// WithFilename sets the snapshot document's name inside the data dir.
func WithFilename(name string) Option {
	return func(s *FileStore) {
		if name != "" {
			s.filename = name
		}
	}
}
