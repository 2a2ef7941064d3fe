package operators

type Operator string

const (
	// Comparison

	OperatorEq  Operator = "EQ"
	OperatorNeq Operator = "NEQ"
	OperatorLt  Operator = "LT"
	OperatorLte Operator = "LTE"
	OperatorGt  Operator = "GT"
	OperatorGte Operator = "GTE"

	// Set combinators over sub-conditions on one field

	OperatorAll Operator = "ALL"
	OperatorAny Operator = "ANY"

	// String matching

	OperatorPrefix Operator = "PREFIX"

	// Nested-document matching

	OperatorFind    Operator = "FIND"
	OperatorNotFind Operator = "NFIND"
)

// IsComparison reports whether the operator is one of the four range comparisons.
func (o Operator) IsComparison() bool {
	switch o {
	case OperatorLt, OperatorLte, OperatorGt, OperatorGte:
		return true
	}
	return false
}
