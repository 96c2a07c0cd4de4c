package api

import "fmt"

// UnknownCommandError signals arguments that do not map onto a known command.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	if e.Command == "" {
		return "no command specified"
	}
	return fmt.Sprintf("unknown command: %s", e.Command)
}

// UnsupportedPairError signals an asset pair the exchange does not list.
type UnsupportedPairError struct {
	Exchange string
	Pair     string
}

func (e *UnsupportedPairError) Error() string {
	return fmt.Sprintf("pair %s is not available on %s", e.Pair, e.Exchange)
}

// NetworkError signals a request that could not complete.
type NetworkError struct {
	Exchange string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("could not reach %s: %s", e.Exchange, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MalformedResponseError signals a response body that does not match the
// expected ticker schema.
type MalformedResponseError struct {
	Exchange string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from %s: %s", e.Exchange, e.Reason)
}
