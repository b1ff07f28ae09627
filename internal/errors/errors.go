// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines every rule violation the engine can report, plus structured error
// types that preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rule violations and malformed input.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a destination that is not among the legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalSpawn indicates a piece placed on an occupied square.
	ErrIllegalSpawn = errors.New("illegal spawn")

	// ErrNoPiece indicates there is no piece on the requested square.
	ErrNoPiece = errors.New("no piece")

	// ErrOutOfBounds indicates a file or rank outside 0-7.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrPromotion indicates an invalid promotion request.
	ErrPromotion = errors.New("promotion error")

	// ErrInvalidFile indicates a file character outside a-h.
	ErrInvalidFile = errors.New("invalid file")

	// ErrInvalidRank indicates a rank character outside 1-8.
	ErrInvalidRank = errors.New("invalid rank")

	// ErrInvalidPositionString indicates a square name that is not two characters.
	ErrInvalidPositionString = errors.New("invalid position string")

	// ErrGameAlreadyOver indicates a move attempted after a king was captured.
	ErrGameAlreadyOver = errors.New("game already over")

	// ErrPromoteFirst indicates a move attempted while a promotion is pending.
	ErrPromoteFirst = errors.New("pawn must be promoted first")

	// ErrNotYourTurn indicates a piece of the side not on move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownSession indicates a session id that is not registered.
	ErrUnknownSession = errors.New("unknown session")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// MoveError wraps a rule violation with the move that caused it.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Origin square in algebraic notation (if known)
	To   string // Destination square in algebraic notation (if known)
	Ply  int    // Number of plies committed before the attempt
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" && e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	} else if e.From != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	parts = append(parts, fmt.Sprintf("ply %d", e.Ply))

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to read external notation (square names,
// piece letters, FEN) with the offending input and offset.
type ParseError struct {
	Err    error  // The underlying error
	Input  string // The text being parsed
	Offset int    // Zero-based offset of the bad character, -1 if not applicable
	Got    string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Offset >= 0 {
			loc += fmt.Sprintf(" at offset %d", e.Offset)
		}
		parts = append(parts, loc)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
