package operators

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// CompareFunc orders two operands: negative when left sorts before right,
// zero when they rank equal, positive otherwise.
type CompareFunc func(left, right any) (int, error)

type compareKey struct {
	left  reflect.Type
	right reflect.Type
}

// Registry resolves scalar comparison functions by operand types.
type Registry struct {
	compare map[compareKey]CompareFunc
}

func NewRegistry() *Registry {
	return &Registry{
		compare: make(map[compareKey]CompareFunc),
	}
}

// Register adds a comparison function for the given operand types.
func Register[L, R any](reg *Registry, fn func(L, R) (int, error)) {
	var zeroL L
	var zeroR R
	key := compareKey{
		left:  reflect.TypeOf(zeroL),
		right: reflect.TypeOf(zeroR),
	}
	reg.compare[key] = func(left, right any) (int, error) {
		return fn(left.(L), right.(R))
	}
}

// NewDefaultRegistry returns a registry covering strings, times and every
// numeric pairing via float64 normalization.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	Register(reg, func(left, right string) (int, error) {
		return strings.Compare(left, right), nil
	})
	Register(reg, func(left, right time.Time) (int, error) {
		return left.Compare(right), nil
	})
	return reg
}

// Compare orders left against right using a registered function, falling
// back to numeric normalization when both operands are numbers.
func (r *Registry) Compare(left, right any) (int, error) {
	key := compareKey{
		left:  reflect.TypeOf(left),
		right: reflect.TypeOf(right),
	}
	if fn, ok := r.compare[key]; ok {
		return fn(left, right)
	}
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if lok && rok {
		switch {
		case lf < rf:
			return -1, nil
		case lf > rf:
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("comparison is not supported for %T and %T", left, right)
}

// Eval applies a comparison operator to the ordering of left versus right.
func (r *Registry) Eval(op Operator, left, right any) (bool, error) {
	c, err := r.Compare(left, right)
	if err != nil {
		return false, err
	}
	switch op {
	case OperatorLt:
		return c < 0, nil
	case OperatorLte:
		return c <= 0, nil
	case OperatorGt:
		return c > 0, nil
	case OperatorGte:
		return c >= 0, nil
	}
	return false, fmt.Errorf("operator %q is not a comparison", op)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
