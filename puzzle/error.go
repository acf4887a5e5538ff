package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a grid or a requested
// operation.  It can produce an error message in English, but
// its main function is to let callers react to failures
// structurally: it tells the caller "this thing failed to meet
// this condition" and provides supplemental details about the
// thing and the condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a caller-supplied argument, the grid geometry, a
// constraint unit, a single cell, or the solver run itself.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	GeometryScope
	UnitScope
	CellScope
	SolverScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	NonSquareCondition
	DuplicateClueCondition
	ConflictingValueCondition
	MissingValueCondition
	UnsolvedGridCondition
	StuckCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	RowAttribute
	ColumnAttribute
	ValueAttribute
	PuzzleSizeAttribute
	SideLengthAttribute
	IterationsAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as minimum required values).
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case GeometryScope:
		es = "Invalid geometry: "
	case UnitScope:
		es = fmt.Sprintf("Problem in %v: ", nextVal())
	case CellScope:
		es = fmt.Sprintf("Problem in cell (%v, %v): ", nextVal(), nextVal())
	case SolverScope:
		es = "Solver failure: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case RowAttribute:
			es += "Row"
		case ColumnAttribute:
			es += "Column"
		case ValueAttribute:
			es += "Value"
		case PuzzleSizeAttribute:
			es += "Puzzle size"
		case SideLengthAttribute:
			es += "Side length"
		case IterationsAttribute:
			es += "Iterations"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case NonSquareCondition:
		es += "Not a perfect square"
	case DuplicateClueCondition:
		es += fmt.Sprintf("Cell already has a clue (%v)", nextVal())
	case ConflictingValueCondition:
		es += fmt.Sprintf("Cell already solved with value %v, can't set %v", nextVal(), nextVal())
	case MissingValueCondition:
		es += fmt.Sprintf("No cell contains %v", nextVal())
	case UnsolvedGridCondition:
		es += fmt.Sprintf("Grid still has %v unknown cells", nextVal())
	case StuckCondition:
		es += fmt.Sprintf("No strategy made progress in iteration %v", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// rangeError returns an Error that describes an out-of-range argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}
