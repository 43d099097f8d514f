package wind

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Source produces the wind vector to apply at a given simulation time, in seconds.
type Source interface {
	Wind(t float64) mgl64.Vec3
}

// Constant is a wind that never changes.
type Constant mgl64.Vec3

// Wind returns c regardless of t.
func (c Constant) Wind(float64) mgl64.Vec3 {
	return mgl64.Vec3(c)
}

var (
	// Calm is no wind at all.
	Calm = Constant{}
	// Breeze blows mostly along +X with a slight lift.
	Breeze = Constant{0.3, 0.1, 0.1}
	// Updraft blows straight up.
	Updraft = Constant{0, 0, 0.1}
)

var presets = map[string]Constant{
	"calm":    Calm,
	"breeze":  Breeze,
	"updraft": Updraft,
}

// Preset returns the named constant wind. Names are case insensitive.
func Preset(name string) (Constant, error) {
	c, ok := presets[strings.ToLower(name)]
	if !ok {
		return Constant{}, fmt.Errorf("unknown wind preset %q (known: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return c, nil
}

// PresetNames returns the names of every preset in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
