package entity

// Status is the lifecycle state of an EmailRecord.
type Status int16

const (
	StatusUnknown Status = iota
	StatusPending
	StatusSent
	StatusFailed
)

// String returns the lowercase status name used in API responses.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSent:
		return "sent"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
