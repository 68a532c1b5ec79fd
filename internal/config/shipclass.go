package config

import (
	"errors"
	"fmt"
	"strings"
)

// ShipClass selects one of the fixed ship stat records.
type ShipClass int

const (
	ShipInterceptor ShipClass = iota
	ShipCruiser
	ShipJuggernaut

	ShipClassCount // number of classes; keep last
)

var shipClassNames = [ShipClassCount]string{
	ShipInterceptor: "interceptor",
	ShipCruiser:     "cruiser",
	ShipJuggernaut:  "juggernaut",
}

// String returns the lowercase class name used by the CLI and YAML.
func (c ShipClass) String() string {
	if c < 0 || c >= ShipClassCount {
		return "unknown"
	}
	return shipClassNames[c]
}

// ShipClasses lists every class in declaration order.
func ShipClasses() []ShipClass {
	out := make([]ShipClass, 0, ShipClassCount)
	for c := ShipClass(0); c < ShipClassCount; c++ {
		out = append(out, c)
	}
	return out
}

// ErrUnknownShipClass is returned for names outside ShipClasses.
var ErrUnknownShipClass = errors.New("config: unknown ship class")

// ParseShipClass maps a name onto a class. The empty string selects the
// cruiser.
func ParseShipClass(s string) (ShipClass, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ShipCruiser, nil
	}
	for c, n := range shipClassNames {
		if n == name {
			return ShipClass(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShipClass, s)
}

// ShipMultipliers scale the base ship stats for one class.
type ShipMultipliers struct {
	Speed     float64 `yaml:"speed"`
	Rotation  float64 `yaml:"rotation"`
	MaxHealth float64 `yaml:"max_health"`
	Cooldown  float64 `yaml:"cooldown"`
	Damage    float64 `yaml:"damage"`
}

// ShipClassesConfig holds one multiplier set per class. Every class has a
// named field so a YAML file cannot leave one undefined by accident.
type ShipClassesConfig struct {
	Interceptor ShipMultipliers `yaml:"interceptor"`
	Cruiser     ShipMultipliers `yaml:"cruiser"`
	Juggernaut  ShipMultipliers `yaml:"juggernaut"`
}

// Table returns the multipliers indexed by ShipClass.
func (c ShipClassesConfig) Table() [ShipClassCount]ShipMultipliers {
	return [ShipClassCount]ShipMultipliers{
		ShipInterceptor: c.Interceptor,
		ShipCruiser:     c.Cruiser,
		ShipJuggernaut:  c.Juggernaut,
	}
}

// For returns the multipliers for one class.
func (c ShipClassesConfig) For(class ShipClass) ShipMultipliers {
	if class < 0 || class >= ShipClassCount {
		return c.Cruiser
	}
	return c.Table()[class]
}
