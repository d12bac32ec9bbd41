package commands

import (
	"fmt"
	"os/user"
	"strings"

	"github.com/shop-tools/sales-atlas/pkg/services/ledger"
	"github.com/spf13/cobra"
)

type SourcesCmd struct {
	configPath string
	ledger     ledger.ServiceFactory
}

func NewSourcesCmd(factory ledger.ServiceFactory) *cobra.Command {
	sc := &SourcesCmd{ledger: factory}
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List configured source profiles",
		RunE:  sc.run,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.salesatlas.ini", usr.HomeDir)

	cmd.Flags().StringVar(&sc.configPath, "config", defaultPath, "Path to the profile registry (default is $HOME/.salesatlas.ini)")

	return cmd
}

func (sc *SourcesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	svc, err := sc.ledger(sc.configPath)
	if err != nil {
		return fmt.Errorf("failed to open profile registry: %w", err)
	}

	profiles, err := svc.ListSources(ctx)
	if err != nil {
		return fmt.Errorf("failed to list source profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No source profiles found in: %s\n", sc.configPath)
		return nil
	}

	lines := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		lines = append(lines, fmt.Sprintf("%s (%s)", profile.Name, profile.Currency))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configured source profiles:\n%s\n",
		strings.Join(lines, "\n"))

	return nil
}
