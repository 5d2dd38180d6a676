package terrain

import "fmt"

// Material tags a block's surface. It only selects a rendering style;
// every material collides the same way.
type Material int

const (
	Grass Material = iota
	Dirt
	Stone
)

var materialNames = map[Material]string{
	Grass: "grass",
	Dirt:  "dirt",
	Stone: "stone",
}

// String returns the config name of the material.
func (m Material) String() string {
	if name, ok := materialNames[m]; ok {
		return name
	}
	return fmt.Sprintf("material(%d)", int(m))
}

// Materials returns every known material in declaration order.
func Materials() []Material {
	return []Material{Grass, Dirt, Stone}
}

// ParseMaterial resolves a config name. An empty name means Dirt.
func ParseMaterial(name string) (Material, error) {
	if name == "" {
		return Dirt, nil
	}
	for m, n := range materialNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("terrain: %w %q", ErrUnknownMaterial, name)
}
