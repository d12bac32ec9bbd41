package commands

import (
	"context"
	"fmt"
	"os/user"
	"time"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shop-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/shop-tools/sales-atlas/pkg/services/ledger"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type ReportCmd struct {
	configPath string
	profile    string
	mode       string
	from       string
	to         string
	ledger     ledger.ServiceFactory
	reporter   *export.Reporter
}

func NewReportCmd(factory ledger.ServiceFactory, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{ledger: factory, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize sales for a source profile",
		RunE:  rc.run,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.salesatlas.ini", usr.HomeDir)

	// Define flags
	cmd.Flags().StringVar(&rc.configPath, "config", defaultPath, "Path to the profile registry (default is $HOME/.salesatlas.ini)")
	cmd.Flags().StringVar(&rc.profile, "profile", "", "Source profile to report on")
	cmd.Flags().StringVar(&rc.mode, "mode", "daily", "Period mode (daily, weekly or monthly)")
	cmd.Flags().StringVar(&rc.from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.to, "to", "", "Period end (YYYY-MM-DD)")

	// Mark required flags
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	mode, err := domain.ParsePeriodMode(rc.mode)
	if err != nil {
		return fmt.Errorf("invalid mode %q. Expected one of: daily, weekly, monthly", rc.mode)
	}

	from, err := parseDateFlag(rc.from)
	if err != nil {
		return fmt.Errorf("invalid --from date %q. Expected format: YYYY-MM-DD", rc.from)
	}
	to, err := parseDateFlag(rc.to)
	if err != nil {
		return fmt.Errorf("invalid --to date %q. Expected format: YYYY-MM-DD", rc.to)
	}

	svc, err := rc.ledger(rc.configPath)
	if err != nil {
		return fmt.Errorf("failed to open profile registry: %w", err)
	}

	sessionID := svc.NewSession()

	status, err := svc.Reload(ctx, sessionID, rc.profile)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d rows from %q (%d dropped)\n",
		status.RowsLoaded, status.Source, status.RowsDropped)

	summary, insights, err := svc.Summary(ctx, sessionID, rc.profile, mode, from, to)
	if err != nil {
		return err
	}

	return rc.reporter.Handle(summary, insights)
}

func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}
