package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/yansircc/lochost/internal/host"
	"github.com/yansircc/lochost/internal/hosts"
	"github.com/yansircc/lochost/internal/manifest"
	"github.com/yansircc/lochost/internal/prompt"
	"github.com/yansircc/lochost/internal/provision"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Host a new site",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		policy := provision.Ignore
		if cfg.ProvisionStrict {
			policy = provision.Surface
		}

		r := &host.Runner{
			Config:   cfg,
			Prompter: prompt.NewLine(os.Stdin, os.Stdout, log),
			Hosts:    hosts.FileWriter{},
			Manifest: manifest.TextEditor{},
			Provisioner: &provision.Shell{
				Command: cfg.ProvisionCommand,
				BoxPath: cfg.BoxPath,
				Policy:  policy,
				Log:     log,
			},
			Out: os.Stdout,
			Log: log,
		}

		if _, err := r.Run(cmd.Context()); err != nil {
			if errors.Is(err, host.ErrAborted) {
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hostCmd)
}
