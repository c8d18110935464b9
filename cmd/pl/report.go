package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/package-layer/internal/ids"
	"github.com/conn-castle/package-layer/internal/install"
	"github.com/conn-castle/package-layer/internal/messages"
)

const flagRequestID = "request-id"

func newReportCmd() *cobra.Command {
	flags := struct {
		requestID string
		targetOrg string
	}{}
	cmd := &cobra.Command{
		Use:   messages.ReportUse,
		Short: messages.ReportShort,
		Long:  messages.ReportLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.requestID == "" {
				return &install.ValidationError{Message: messages.ReportRequestIDRequired}
			}
			if !ids.Valid(flags.requestID, ids.InstallRequestPrefix) {
				return &install.ValidationError{Message: fmt.Sprintf(messages.InstallInvalidRequestIDFmt, flags.requestID)}
			}

			cfg, err := loadProjectConfig()
			if err != nil {
				return err
			}
			client, orgName, err := connectTarget(flags.targetOrg, cfg.APIVersion)
			if err != nil {
				return err
			}

			outcome, err := install.CheckRequest(cmd.Context(), client, flags.requestID)
			if err != nil {
				return err
			}
			printOutcome(cmd.OutOrStdout(), outcome, orgName)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.requestID, flagRequestID, "", messages.ReportFlagRequestID)
	cmd.Flags().StringVar(&flags.targetOrg, flagTargetOrg, "", messages.InstallFlagTargetOrg)

	return cmd
}
