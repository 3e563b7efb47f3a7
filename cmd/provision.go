package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yansircc/lochost/internal/notify"
	"github.com/yansircc/lochost/internal/provision"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Re-provision the Homestead box without adding a site",
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

		// Failures are always reported here; nothing else depends on the run.
		p := &provision.Shell{
			Command: cfg.ProvisionCommand,
			BoxPath: cfg.BoxPath,
			Policy:  provision.Surface,
			Log:     log,
		}
		notify.Activityf(nil, "Provision Vagrant")
		if err := p.Provision(cmd.Context()); err != nil {
			return err
		}
		notify.Successf(nil, "Complete!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(provisionCmd)
}
