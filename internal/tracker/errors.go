package tracker

import "errors"

// Not-found conditions are surfaced as errors rather than nil results so
// callers are forced to handle the missing case.
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrExpenseNotFound = errors.New("expense not found")
)

// Range validation failures, rejected before any mutation.
var (
	ErrNegativeBudget = errors.New("budget must be non-negative")
	ErrNegativeCost   = errors.New("cost must be non-negative")
	ErrConditionRange = errors.New("condition rating must be between 1 and 5")
)

func validCondition(n int) bool {
	return n >= 1 && n <= 5
}
