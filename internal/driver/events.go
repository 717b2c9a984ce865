package driver

// Status is the lifecycle of one file during a directory run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusTokenizing
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusTokenizing:
		return "tokenizing"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Event is one progress update from TokenizeDir, keyed by file path.
type Event struct {
	Path   string
	Status Status
}
