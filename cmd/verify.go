package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/antennaops/trackcheck/app"
	"github.com/antennaops/trackcheck/core/report"
	"github.com/antennaops/trackcheck/infra/logger"
)

var (
	verifyVerbose bool
	verifyJSON    bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify <instance> <maintenance> <solution>",
	Short: "Verify a candidate schedule against a problem instance",
	Long: `verify loads the problem instance, the maintenance schedule and the
candidate solution, runs every constraint check, and prints the verdict, the
complete violation list, the recomputed score and the fairness summary.

The exit status is non-zero when the verdict is INVALID or any input is
malformed.`,
	Args: cobra.ExactArgs(3),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVarP(&verifyVerbose, "verbose", "v", false, "include per-violation and per-mission detail")
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "render the report as JSON")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	verifier, err := app.New(cfg)
	if err != nil {
		return err
	}
	logg := logger.New("verify-command")
	go func() {
		if err := verifier.ServeMetrics(ctx); err != nil {
			logg.Errorf("metrics server: %v", err)
		}
	}()

	rep, verr := verifier.VerifyFiles(args[0], args[1], args[2])
	if verr != nil && !errors.Is(verr, app.ErrInvalidSchedule) {
		// Structural failure: the solution cannot even be interpreted
		// against the problem, so there is no report to render.
		return verr
	}

	if verifyJSON {
		err = report.WriteJSON(cmd.OutOrStdout(), rep)
	} else {
		err = report.WriteText(cmd.OutOrStdout(), rep, verifyVerbose)
	}
	if err != nil {
		return err
	}
	return verr
}
