package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/chewxy/math32"
)

// Kind selects an activation function.
type Kind int

// Supported activation kinds.
const (
	ReLU Kind = iota
	Softmax
)

// String returns the lower-case activation name.
func (k Kind) String() string {
	switch k {
	case ReLU:
		return "relu"
	case Softmax:
		return "softmax"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k names a supported activation.
func (k Kind) Valid() bool {
	return k == ReLU || k == Softmax
}

// ParseKind converts an activation name ("relu", "softmax"; case-insensitive)
// to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relu":
		return ReLU, nil
	case "softmax":
		return Softmax, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrIncompatibleActivationKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrIncompatibleActivationKind, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Activation applies one activation function to a whole matrix.
//
// ReLU is applied element-wise: f(x) = max(0, x).
//
// Softmax normalizes over every element of the matrix:
// f(x_i) = exp(x_i) / sum_j exp(x_j). No max-subtraction is performed, so
// inputs above roughly 88 overflow float32 to +Inf.
type Activation struct {
	kind Kind
}

// NewActivation creates an activation of the given kind.
// Returns ErrIncompatibleActivationKind for unknown kinds.
func NewActivation(kind Kind) (Activation, error) {
	if !kind.Valid() {
		return Activation{}, fmt.Errorf("%w: %v", ErrIncompatibleActivationKind, kind)
	}
	return Activation{kind: kind}, nil
}

// Kind returns the activation kind.
func (a Activation) Kind() Kind {
	return a.kind
}

// Apply returns a new matrix of the same shape holding the activated values.
// The input is not modified.
func (a Activation) Apply(input *matrix.Matrix) (*matrix.Matrix, error) {
	switch a.kind {
	case ReLU:
		return relu(input), nil
	case Softmax:
		return softmax(input)
	default:
		return nil, fmt.Errorf("%w: %v", ErrIncompatibleActivationKind, a.kind)
	}
}

func relu(input *matrix.Matrix) *matrix.Matrix {
	data := input.Data()
	for i, v := range data {
		if v < 0 {
			data[i] = 0
		}
	}
	out, _ := matrix.FromSlice(input.Rows(), input.Cols(), data)
	return out
}

func softmax(input *matrix.Matrix) (*matrix.Matrix, error) {
	data := input.Data()
	var sum float32
	for i, v := range data {
		e := math32.Exp(v)
		data[i] = e
		sum += e
	}
	if sum == 0 {
		return nil, fmt.Errorf("%w: softmax exponentials of %v sum to zero", ErrDivisionByZero, input.Shape())
	}

	exp, _ := matrix.FromSlice(input.Rows(), input.Cols(), data)
	return exp.Scale(1 / sum), nil
}
