package logic

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// BusPinName returns the name of the n-th pin in bus b.
//
func BusPinName(b string, n int) string {
	return b + "[" + strconv.Itoa(n) + "]"
}

// parseIOSpec parses a pin specification string and returns individual
// pin names in a slice, expanding bus declarations. For example:
//
//	parseIOSpec("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
func parseIOSpec(spec string) ([]string, error) {
	var out []string

	for _, f := range strings.Split(spec, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		i := strings.IndexRune(f, '[')
		if i < 0 {
			if !validPinName(f) {
				return nil, errors.Errorf("in %q: invalid pin name %q", spec, f)
			}
			out = append(out, f)
			continue
		}
		name := f[:i]
		if !validPinName(name) {
			return nil, errors.Errorf("in %q: invalid bus name %q", spec, name)
		}
		if f[len(f)-1] != ']' {
			return nil, errors.Errorf("in %q: missing close bracket", spec)
		}
		size, err := strconv.Atoi(strings.TrimSpace(f[i+1 : len(f)-1]))
		if err != nil || size <= 0 {
			return nil, errors.Errorf("in %q: invalid bus size for %q", spec, name)
		}
		for n := 0; n < size; n++ {
			out = append(out, BusPinName(name, n))
		}
	}

	return out, nil
}

// ParseConnections parses a connection description and returns a map of
// part pin names to the chip pin names they connect to. The description
// is a comma separated list of partPin=chipPin assignments where either
// side may be a single pin ("out"), an indexed bus pin ("key[12]") or a
// bus range ("a[0..7]"). A range maps pin for pin when both sides are
// ranges of equal width:
//
//	ParseConnections("a[0..1]=key[8..9], out=ok")
//	// a[0]:key[8], a[1]:key[9], out:ok
//
func ParseConnections(connections string) (map[string][]string, error) {
	r := make(map[string][]string)

	for _, f := range strings.Split(connections, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		i := strings.IndexRune(f, '=')
		if i < 0 {
			return nil, errors.Errorf("in %q: expected pin assignment, got %q", connections, f)
		}
		k := strings.TrimSpace(f[:i])
		v := strings.TrimSpace(f[i+1:])
		if k == "" || v == "" {
			return nil, errors.Errorf("in %q: invalid pin mapping %q", connections, f)
		}
		ks, err := expandRange(k)
		if err != nil {
			return nil, errors.Wrap(err, "expand "+k)
		}
		vs, err := expandRange(v)
		if err != nil {
			return nil, errors.Wrap(err, "expand "+v)
		}
		switch {
		case len(ks) == len(vs):
			// many to many
			for i := range ks {
				r[ks[i]] = append(r[ks[i]], vs[i])
			}
		case len(ks) == 1:
			// one to many
			r[ks[0]] = append(r[ks[0]], vs...)
		case len(vs) == 1:
			// many to one
			for _, k := range ks {
				r[k] = append(r[k], vs[0])
			}
		default:
			return nil, errors.Errorf("pin count mismatch in mapping %q", f)
		}
	}
	return r, nil
}

func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	i = strings.Index(n, "..")
	if i < 0 {
		// indexed pin like "key[12]", used as-is
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, err
	}
	n = n[i+2:]
	i = strings.IndexRune(n, ']')
	if i < 0 {
		return nil, errors.New("no terminating ] in bus range")
	}
	end, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, err
	}
	if end < start {
		return nil, errors.Errorf("invalid bus range %q", name)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}

func validPinName(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return s != ""
}
