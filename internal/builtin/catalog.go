// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"github.com/invowk/dais/pkg/command"
)

// Types returns every builtin type.
func Types() []*command.Type {
	return []*command.Type{Product, Scale, Chain, SquareDep, Expand, Greet}
}

// Catalog returns a fresh, validated catalog of the builtin types.
func Catalog() (*command.Catalog, error) {
	c, err := command.NewCatalog(Types()...)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
