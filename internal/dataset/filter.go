package dataset

import (
	"fmt"
	"strings"
)

// FilterSpec maps a column name (canonical field or pass-through header) to
// the set of accepted values. An absent or empty set leaves the column
// unconstrained. Across columns the constraints AND together; the values
// within one column OR together.
type FilterSpec map[string][]string

// IsEmpty reports whether the spec imposes no constraint at all.
func (s FilterSpec) IsEmpty() bool {
	for _, vals := range s {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// Apply returns a new filtered view of the dataset. The base dataset is
// untouched and row order is preserved. An empty result is valid.
func (d *Dataset) Apply(spec FilterSpec) *Dataset {
	out := &Dataset{Name: d.Name, Columns: d.Columns}
	if spec.IsEmpty() {
		out.Records = d.Records
		return out
	}
	for _, rec := range d.Records {
		if matches(rec, spec) {
			out.Records = append(out.Records, rec)
		}
	}
	return out
}

func matches(rec Record, spec FilterSpec) bool {
	for col, accepted := range spec {
		if len(accepted) == 0 {
			continue
		}
		v := rec.Value(col)
		ok := false
		for _, a := range accepted {
			if v == a {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// ParseFilterSpec builds a spec from repeated "COLUMN=v1,v2" clauses, the
// shape the --where flag delivers. Values for the same column accumulate.
func ParseFilterSpec(clauses []string) (FilterSpec, error) {
	spec := FilterSpec{}
	for _, c := range clauses {
		name, rest, found := strings.Cut(c, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid filter %q (want COLUMN=v1,v2)", c)
		}
		for _, v := range strings.Split(rest, ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				spec[name] = append(spec[name], v)
			}
		}
		if len(spec[name]) == 0 {
			return nil, fmt.Errorf("filter %q selects no values", c)
		}
	}
	return spec, nil
}
