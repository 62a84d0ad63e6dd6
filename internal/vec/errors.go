package vec

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is the sentinel matched by errors.Is for every ShapeError.
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrBackendUnavailable reports a compute backend that was not linked,
// registered or built into the binary.
var ErrBackendUnavailable = errors.New("backend unavailable")

// ShapeError reports operand lengths or dimensions incompatible with the
// requested operation. It is always returned before any write happens, so a
// failed operation never leaves a container partially mutated.
type ShapeError struct {
	Op   string
	Want []int
	Got  []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: want %v, got %v", e.Op, e.Want, e.Got)
}

// Is makes every ShapeError match ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool { return target == ErrShapeMismatch }

func shapeErr(op string, want, got []int) error {
	return &ShapeError{Op: op, Want: want, Got: got}
}

// CheckLen validates that two operand slices of lengths nx and ny are
// compatible for an element-wise operation. Backends call this before
// touching any data.
func CheckLen(op string, nx, ny int) error {
	if nx != ny {
		return shapeErr(op, []int{nx}, []int{ny})
	}
	return nil
}

// CheckGemm validates the operands of a column-major matrix multiply:
// a is ar×ac with ar*ac elements, b is br×bc with br*bc elements, and the
// inner dimensions ac and br must agree.
func CheckGemm(op string, ar, ac, la, br, bc, lb int) error {
	if ar <= 0 || ac <= 0 || ar*ac != la {
		return shapeErr(op, []int{ar, ac}, []int{la})
	}
	if br <= 0 || bc <= 0 || br*bc != lb {
		return shapeErr(op, []int{br, bc}, []int{lb})
	}
	if ac != br {
		return shapeErr(op, []int{ar, ac}, []int{br, bc})
	}
	return nil
}
