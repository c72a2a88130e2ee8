package service

import "fmt"

// ValidationError reports a request that fails a precondition before any
// mutation happens (missing field, self-relationship).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports a lookup miss for an asset code. Role distinguishes
// which endpoint of a relationship was missing.
type NotFoundError struct {
	Role string // "asset", "child" or "parent"
	Code string
}

func (e *NotFoundError) Error() string {
	switch e.Role {
	case "child":
		return fmt.Sprintf("child asset %s not found", e.Code)
	case "parent":
		return fmt.Sprintf("parent asset %s not found", e.Code)
	default:
		return "asset not found"
	}
}
