package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// Default returns the catalog compiled into the binary. The embedded file is
// validated at package init so a broken build fails fast.
func Default() *Catalog {
	cat, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog invalid: %v", err))
	}
	return cat
}
