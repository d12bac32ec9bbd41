package terminal

import (
	"io"
	"os"

	"github.com/shop-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/shop-tools/sales-atlas/pkg/runtime/terminal/export"

	"github.com/shop-tools/sales-atlas/pkg/services/ledger"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	ledger   ledger.ServiceFactory
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Ledger ledger.ServiceFactory
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		ledger:   opts.Ledger,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salesatlas",
		Short: "Barbershop sales reporting tool",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.ledger, cli.reporter))
	cmd.AddCommand(commands.NewSourcesCmd(cli.ledger))

	return cmd
}
