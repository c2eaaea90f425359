package ops

// CreateTag, DeleteTag, and ListTags forward to the repository.
func (e *Engine) CreateTag(name, message string) error { return e.repo.CreateTag(name, message) }
func (e *Engine) DeleteTag(name string) error           { return e.repo.DeleteTag(name) }
func (e *Engine) ListTags() ([]string, error)           { return e.repo.ListTags() }
