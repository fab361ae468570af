package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotDetected is returned when neither dependency analysis nor the
// config-file fallback could establish a platform.
var ErrNotDetected = errors.New("no visual testing platform detected")

// ErrAlreadyMigrated is returned when the detected source platform is
// already the migration target.
var ErrAlreadyMigrated = errors.New("project already uses Sauce Labs Visual")

// Candidate is one (platform, framework) pair matched during detection.
type Candidate struct {
	Platform  Platform
	Framework Framework
	Source    string // manifest or config file that produced the match
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s/%s (%s)", c.Platform, c.Framework, c.Source)
}

// ConflictError is returned when detection finds more than one platform
// signal. Mixed signals are never resolved by precedence.
type ConflictError struct {
	Candidates []Candidate
}

func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		parts[i] = c.String()
	}
	return "multiple visual testing platforms detected: " + strings.Join(parts, ", ")
}

// IsConflict reports whether err is a detection conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
