package ratings

import "errors"

var (
	// ErrInvalidColumn is returned when a column does not exist or cannot be used as a metric.
	ErrInvalidColumn = errors.New("invalid column")
	// ErrUnknownTeam is returned when a team code has no entry in the team table.
	ErrUnknownTeam = errors.New("unknown team code")
)
