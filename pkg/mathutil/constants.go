// Package mathutil provides scalar helpers and the named mathematical
// constants used across the toolkit.
package mathutil

import "sort"

// Mathematical constants. Values match the usual 20-digit decimal expansions.
const (
	Pi      = 3.14159265358979323846
	TwoPi   = 2.0 * Pi
	HalfPi  = 0.5 * Pi
	E       = 2.71828182845904523536
	Log2E   = 1.44269504088896340736
	Log10E  = 0.43429448190325182765
	Ln2     = 0.69314718055994530942
	Ln10    = 2.30258509299404568402
	Sqrt2   = 1.41421356237309504880
	Sqrt1_2 = 0.70710678118654752440
	Deg2Rad = Pi / 180.0
	Rad2Deg = 180.0 / Pi
)

// namedConstants is the process-wide table of named literals. Both the
// symbolic parser and the calculator consult this table, so a name listed
// here is never visible as a variable.
var namedConstants = map[string]float64{
	"pi":      Pi,
	"e":       E,
	"ln2":     Ln2,
	"ln10":    Ln10,
	"sqrt2":   Sqrt2,
	"sqrt1_2": Sqrt1_2,
	"deg2rad": Deg2Rad,
	"rad2deg": Rad2Deg,
	"log2e":   Log2E,
	"log10e":  Log10E,
	"two_pi":  TwoPi,
	"half_pi": HalfPi,
}

// LookupConstant returns the value of a named constant such as "pi" or
// "half_pi". The second return is false when the name is not in the table.
func LookupConstant(name string) (float64, bool) {
	v, ok := namedConstants[name]
	return v, ok
}

// ConstantNames returns the sorted names of all known constants.
func ConstantNames() []string {
	names := make([]string, 0, len(namedConstants))
	for name := range namedConstants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
