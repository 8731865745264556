// Package instanceid produces the identifier that tags a generated
// configuration as belonging to a particular project instance.
package instanceid

import (
	"sync"

	"github.com/google/uuid"
)

var (
	processOnce sync.Once
	processID   string
)

// ID returns the identifier shared by every render in this process: a random
// UUID in text form with a trailing newline, so it can be spliced into a
// variables file verbatim. The value is generated on first use and is
// immutable for the life of the process.
func ID() string {
	processOnce.Do(func() {
		processID = Generate()
	})
	return processID
}

// Generate returns a fresh identifier without touching the cached
// process-wide value. Callers that need a pinned identity, such as tests or
// a scaffold reproducing an existing project, pass the result in explicitly.
func Generate() string {
	return uuid.NewString() + "\n"
}
