package corpus

import (
	"strings"

	"github.com/KirkDiggler/npc-generator/internal/errors"
)

// Lookup returns the parameters of a group, retrying with spaces replaced by
// underscores when the name is not found
func Lookup(c Corpus, name string) ([]string, error) {
	params, err := c.Parameters(name)
	if err == nil || !errors.IsNotFound(err) || !strings.Contains(name, " ") {
		return params, err
	}
	return c.Parameters(strings.ReplaceAll(name, " ", "_"))
}
