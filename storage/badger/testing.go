package badger

// NewMemoryEventRepository creates an in-memory event repository for
// testing. Callers must close both the repository and the backend.
func NewMemoryEventRepository() (*EventRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewEventRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return repo, backend, nil
}
