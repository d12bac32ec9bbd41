package main

import (
	"fmt"
	"os"

	"github.com/shop-tools/sales-atlas/pkg/runtime/terminal"
	"github.com/shop-tools/sales-atlas/pkg/services/config"
	"github.com/shop-tools/sales-atlas/pkg/services/insight"
	"github.com/shop-tools/sales-atlas/pkg/services/ledger"
	"github.com/shop-tools/sales-atlas/pkg/services/source"
)

func newLedgerService(configPath string) (ledger.Service, error) {
	registry, err := config.NewRegistry(configPath)
	if err != nil {
		return nil, err
	}
	return ledger.NewService(registry, source.NewSheetsSource(), insight.NewRegistry()), nil
}

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Ledger: newLedgerService,
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
