package main

import (
	"os"

	"github.com/dimityrivanov/transaction-insights/cmd/insights/cmd"
	apperrors "github.com/dimityrivanov/transaction-insights/pkg/errors"
)

// Version information set by build flags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)

	if err := cmd.Execute(); err != nil {
		if insightsErr, ok := apperrors.AsInsightsError(err); ok {
			os.Exit(insightsErr.GetExitCode())
		}
		os.Exit(1)
	}
}
