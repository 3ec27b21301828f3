package engine

// GroupValues is one group of a resolved character with its selected values
type GroupValues struct {
	Group  string   `json:"group" yaml:"group"`
	Values []string `json:"values" yaml:"values"`
}

// Character is an ordered list of resolved groups
type Character struct {
	Groups []GroupValues `json:"groups" yaml:"groups"`
}

// Values returns the values resolved for a group
func (c *Character) Values(group string) ([]string, bool) {
	for _, g := range c.Groups {
		if g.Group == group {
			return g.Values, true
		}
	}
	return nil, false
}

// ResolveInput defines the request for resolving a character
type ResolveInput struct {
	// Forced values are written into their group before any random draw.
	// Groups unknown to the corpus are added to the character.
	Forced []GroupValues
}

// ResolveOutput defines the response for resolving a character
type ResolveOutput struct {
	Character *Character
}
