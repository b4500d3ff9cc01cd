package uci

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ostbo/uci-engine-sdk-go/internal/errors"
)

var (
	optionRe = regexp.MustCompile(`^option\s+name\s+(.+?)\s+type\s+(\S+)\s+default\s*(.*)$`)
	spinRe   = regexp.MustCompile(`^(-?\d+)\s+min\s+(-?\d+)\s+max\s+(-?\d+)`)
)

// ParseOptionLine parses one advertised option line of the form
//
//	option name <name> type <type> default <rest>
//
// into a Descriptor. Lines not matching the grammar return (nil, nil);
// the handshake interleaves arbitrary banner lines with option
// advertisements and they are expected noise. Lines matching the grammar
// whose type-specific payload is invalid return a MalformedOptionError.
func ParseOptionLine(line string) (*Descriptor, error) {
	m := optionRe.FindStringSubmatch(line)
	if m == nil {
		return nil, nil
	}

	name, typeToken, rest := m[1], m[2], m[3]

	switch typeToken {
	case "string":
		return &Descriptor{Name: name, Type: OptionString, Default: rest}, nil

	case "spin":
		im := spinRe.FindStringSubmatch(rest)
		if im == nil {
			return nil, &errors.MalformedOptionError{
				Line:   line,
				Reason: "spin payload must be <default> min <min> max <max>",
			}
		}

		def, _ := strconv.Atoi(im[1])
		minV, _ := strconv.Atoi(im[2])
		maxV, _ := strconv.Atoi(im[3])

		return &Descriptor{Name: name, Type: OptionInt, Default: def, Min: minV, Max: maxV}, nil

	case "combo":
		parts := strings.Split(rest, "var")

		values := make(map[string]string, len(parts)-1)
		for _, raw := range parts[1:] {
			v := strings.TrimSpace(raw)
			values[strings.ToLower(v)] = v
		}

		return &Descriptor{
			Name:    name,
			Type:    OptionEnum,
			Default: strings.TrimSpace(parts[0]),
			Values:  values,
		}, nil

	case "button":
		return &Descriptor{Name: name, Type: OptionAction}, nil

	case "check":
		// Anything other than the exact token "true", malformed
		// defaults included, parses as false.
		return &Descriptor{Name: name, Type: OptionBool, Default: rest == "true"}, nil

	default:
		return nil, &errors.MalformedOptionError{
			Line:   line,
			Reason: "unsupported option type " + strconv.Quote(typeToken),
		}
	}
}
