package analysis

import "fmt"

// InvalidArgumentError reports a caller-supplied mode argument (granularity,
// cycle axis, rank method) outside its defined enumeration. The computation
// never defaults silently.
type InvalidArgumentError struct {
	Name  string
	Value int
	Valid string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %d: valid values are %s", e.Name, e.Value, e.Valid)
}
