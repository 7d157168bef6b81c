package aggregating

import "errors"

var (
	ErrUnknownDashboard = errors.New("unknown dashboard")
	ErrAssemblyFailed   = errors.New("dashboard assembly failed")
	ErrInvalidZip       = errors.New("zip must be 5 digits")
)
