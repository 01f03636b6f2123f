package task

// Status represents the completion state of a Task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// Completed reports whether s is the completed state.
func (s Status) Completed() bool {
	return s == StatusCompleted
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
