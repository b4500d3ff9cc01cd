package uci

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/ostbo/uci-engine-sdk-go/internal/errors"
)

// OptionValue names an engine option and the value to apply to it.
// A nil Value applies the descriptor's advertised default.
type OptionValue struct {
	Name  string
	Value any
}

// FormatSetOption validates value against the descriptor and renders the
// wire-ready pair: the canonical option name and the value token, nil for
// the valueless action form. A nil value substitutes the descriptor's
// default before validation.
func FormatSetOption(d *Descriptor, value any) (string, *string, error) {
	if value == nil {
		value = d.Default
	}

	switch d.Type {
	case OptionAction:
		if value != nil {
			return "", nil, &errors.InvalidOptionValueError{
				Option: d.Name,
				Value:  value,
				Reason: "action options take no value",
			}
		}

		return d.Name, nil, nil

	case OptionBool:
		b, ok := value.(bool)
		if !ok {
			return "", nil, &errors.InvalidOptionValueError{
				Option: d.Name,
				Value:  value,
				Reason: fmt.Sprintf("want bool, got %T", value),
			}
		}

		wire := strconv.FormatBool(b)

		return d.Name, &wire, nil

	case OptionInt:
		n, ok := value.(int)
		if !ok {
			return "", nil, &errors.InvalidOptionValueError{
				Option: d.Name,
				Value:  value,
				Reason: fmt.Sprintf("want int, got %T", value),
			}
		}

		if n < d.Min || n > d.Max {
			return "", nil, &errors.InvalidOptionValueError{
				Option: d.Name,
				Value:  value,
				Reason: fmt.Sprintf("must be between %d and %d", d.Min, d.Max),
			}
		}

		wire := strconv.Itoa(n)

		return d.Name, &wire, nil

	case OptionEnum:
		s, ok := value.(string)
		if !ok {
			return "", nil, &errors.InvalidOptionValueError{
				Option: d.Name,
				Value:  value,
				Reason: fmt.Sprintf("want string, got %T", value),
			}
		}

		canonical, ok := d.Values[strings.ToLower(s)]
		if !ok {
			allowed := slices.Sorted(maps.Values(d.Values))

			return "", nil, &errors.InvalidOptionValueError{
				Option: d.Name,
				Value:  value,
				Reason: "must be one of: " + strings.Join(allowed, ", "),
			}
		}

		return d.Name, &canonical, nil

	case OptionString:
		s, ok := value.(string)
		if !ok {
			return "", nil, &errors.InvalidOptionValueError{
				Option: d.Name,
				Value:  value,
				Reason: fmt.Sprintf("want string, got %T", value),
			}
		}

		return d.Name, &s, nil

	default:
		return "", nil, &errors.InvalidOptionValueError{
			Option: d.Name,
			Value:  value,
			Reason: "unsupported option type",
		}
	}
}
