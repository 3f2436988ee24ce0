// @title Subspace Catalog API
// @version 1.0
// @description Catálogo de tenants, brands e solutions; toda resposta traz o discriminador "object".
// @BasePath /

package main

import (
	"fmt"
	"os"

	"subspace-catalog/cmd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
