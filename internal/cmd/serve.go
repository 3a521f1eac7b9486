// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	serveCmdUsage = "serve"
	serveCmdShort = "start the provisioning HTTP server"
	serveCmdLong  = `Start the HTTP server exposing the data product lifecycle API.
	The server answers validate, provision, status and unprovision requests from
	the provisioning coordinator, plus the custom URL picker endpoints used to
	browse glossary terms. The OpenMetadata connection and the listen address
	are read from environment variables.`

	serveCmdExample = `# Start the server on the configured HTTP_PORT
	omta serve`
)

// ServeCmd returns the Cobra command that starts the HTTP server.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := newServeOptions(cmd.Context())
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}
}

// handleError prints the error on the command error stream and returns it so
// the process exits with a non zero code.
func handleError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(err)
	return err
}
