package shell

import "fmt"

// CmdErrorKind discriminates interpreter failures.
type CmdErrorKind uint8

const (
	MissingArgument CmdErrorKind = iota
	UnknownCommand
	IllegalArgument
)

// CmdError reports a command line the interpreter rejected. The arena is
// never mutated by a rejected command.
type CmdError struct {
	Kind     CmdErrorKind
	Argument string
	Reason   string
	Cause    error
}

func (e *CmdError) Error() string {
	switch e.Kind {
	case MissingArgument:
		return fmt.Sprintf("missing argument: %s", e.Argument)
	case UnknownCommand:
		return fmt.Sprintf("unknown command: %s", e.Argument)
	default:
		return fmt.Sprintf("Illegal argument '%s': %s", e.Argument, e.Reason)
	}
}

func (e *CmdError) Unwrap() error {
	return e.Cause
}

func missingArgument(name string) error {
	return &CmdError{Kind: MissingArgument, Argument: name}
}

func unknownCommand(cmd string) error {
	return &CmdError{Kind: UnknownCommand, Argument: cmd}
}

func illegalArgument(arg, reason string) error {
	return &CmdError{Kind: IllegalArgument, Argument: arg, Reason: reason}
}

func illegalArgumentErr(arg, reason string, cause error) error {
	return &CmdError{
		Kind:     IllegalArgument,
		Argument: arg,
		Reason:   fmt.Sprintf("%s: %v", reason, cause),
		Cause:    cause,
	}
}
