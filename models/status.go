package models

// DeleteStatus marks a row as logically deleted or live. Deleted rows are kept
// for history and never served, updated or referenced by normal operations.
// The numeric values match the existing delete_status column.
type DeleteStatus int

const (
	DeleteStatusDeleted DeleteStatus = 1
	DeleteStatusActive  DeleteStatus = 2
)

func (s DeleteStatus) IsActive() bool {
	return s == DeleteStatusActive
}

func (s DeleteStatus) String() string {
	switch s {
	case DeleteStatusDeleted:
		return "deleted"
	case DeleteStatusActive:
		return "active"
	default:
		return "unknown"
	}
}
