package uci

// OptionType classifies an advertised engine option.
type OptionType int

// Option types, mapped from the protocol's type tokens:
// string→String, spin→Int, combo→Enum, button→Action, check→Bool.
const (
	OptionString OptionType = iota
	OptionInt
	OptionBool
	OptionEnum
	OptionAction
)

// String implements fmt.Stringer.
func (t OptionType) String() string {
	switch t {
	case OptionString:
		return "string"
	case OptionInt:
		return "int"
	case OptionBool:
		return "bool"
	case OptionEnum:
		return "enum"
	case OptionAction:
		return "action"
	default:
		return "unknown"
	}
}

// Descriptor is the typed representation of one advertised engine option.
// Descriptors are immutable once parsed; only the fields relevant to Type
// are populated.
type Descriptor struct {
	// Name as advertised, original casing preserved. Sessions key their
	// lookup maps by the lowercased form.
	Name string

	// Type of the option.
	Type OptionType

	// Default value: string, int, or bool depending on Type; nil for
	// OptionAction.
	Default any

	// Min and Max bound OptionInt values, inclusive.
	Min, Max int

	// Values maps each lowercased allowed value of an OptionEnum to its
	// canonically cased wire form.
	Values map[string]string
}
