package todoitem

// Status represents the completion state of a TodoItem.
type Status string

const (
	StatusNotCompleted Status = "NOT_COMPLETED"
	StatusCompleted    Status = "COMPLETED"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotCompleted, StatusCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// StatusFor maps the complete flag of an update to a status.
func StatusFor(complete bool) Status {
	if complete {
		return StatusCompleted
	}
	return StatusNotCompleted
}
