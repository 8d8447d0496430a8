package tdx

import "fmt"

// ContractError signals a registry invariant violation, as opposed to bad
// report data. It means a caller broke the find-or-create contract (for
// example, a create-mode user resolution that did not land on exactly one
// user) and is a bug, not something a different report file can fix.
type ContractError struct {
	Op  string
	Msg string
}

func (e ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}
