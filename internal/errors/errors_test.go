package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrIllegalSpawn", ErrIllegalSpawn, ErrIllegalSpawn},
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrPromotion", ErrPromotion, ErrPromotion},
		{"ErrInvalidFile", ErrInvalidFile, ErrInvalidFile},
		{"ErrInvalidRank", ErrInvalidRank, ErrInvalidRank},
		{"ErrInvalidPositionString", ErrInvalidPositionString, ErrInvalidPositionString},
		{"ErrGameAlreadyOver", ErrGameAlreadyOver, ErrGameAlreadyOver},
		{"ErrPromoteFirst", ErrPromoteFirst, ErrPromoteFirst},
		{"ErrNotYourTurn", ErrNotYourTurn, ErrNotYourTurn},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrUnknownSession", ErrUnknownSession, ErrUnknownSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.sentinel) {
				t.Errorf("Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct guards against two kinds comparing equal.
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrIllegalMove, ErrIllegalSpawn, ErrNoPiece, ErrOutOfBounds,
		ErrPromotion, ErrInvalidFile, ErrInvalidRank, ErrInvalidPositionString,
		ErrGameAlreadyOver, ErrPromoteFirst, ErrNotYourTurn,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrIllegalMove, From: "e1", To: "f1", Ply: 12},
			contains: []string{"move e1-f1", "ply 12", "illegal move"},
		},
		{
			name:     "square only",
			err:      &MoveError{Err: ErrNoPiece, From: "d4"},
			contains: []string{"square d4", "ply 0", "no piece"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrNotYourTurn, From: "e7", To: "e6", Ply: 4}
	wrapped := fmt.Errorf("session brave-otter: %w", moveErr)

	var extracted *MoveError
	if !As(wrapped, &extracted) {
		t.Fatal("As() could not extract MoveError")
	}
	if extracted.Ply != 4 {
		t.Errorf("extracted.Ply = %d, want 4", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrNotYourTurn) {
		t.Error("errors.Is(wrapped, ErrNotYourTurn) = false, want true")
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Err: ErrInvalidFile, Input: "z9", Offset: 0, Got: "'z'"}
	msg := err.Error()

	for _, s := range []string{`"z9"`, "offset 0", "'z'", "invalid file"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}

	bare := &ParseError{Offset: -1}
	if got := bare.Error(); got != "parse error" {
		t.Errorf("empty ParseError.Error() = %q, want %q", got, "parse error")
	}
}

func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidPositionString, Input: "e22", Offset: -1}

	if !errors.Is(parseErr, ErrInvalidPositionString) {
		t.Error("errors.Is(parseErr, ErrInvalidPositionString) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d in session %s", 15, "calm-heron")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
