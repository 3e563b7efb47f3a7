package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/yansircc/lochost/internal/config"
	"github.com/yansircc/lochost/internal/exec"
	"github.com/yansircc/lochost/internal/manifest"
)

type check struct {
	name string
	err  error
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the hosts file, Homestead manifest and provisioner are usable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		checks := []check{{"configuration", cfg.Validate()}}
		checks = append(checks, diagnose(cfg)...)

		failed := 0
		for _, c := range checks {
			if c.err != nil {
				failed++
				fmt.Printf("  [!!] %s: %v\n", c.name, c.err)
				continue
			}
			fmt.Printf("  [ok] %s\n", c.name)
		}
		if failed > 0 {
			return errors.Newf("%d check(s) failed", failed)
		}
		fmt.Println("\nReady to host sites.")
		return nil
	},
}

// diagnose inspects the targets without modifying them.
func diagnose(cfg config.Config) []check {
	var checks []check

	f, err := os.OpenFile(cfg.HostsFile, os.O_APPEND|os.O_WRONLY, 0)
	if err == nil {
		f.Close()
	}
	checks = append(checks, check{"hosts file " + cfg.HostsFile + " writable", err})

	data, err := os.ReadFile(cfg.ManifestPath)
	checks = append(checks, check{"manifest " + cfg.ManifestPath + " readable", err})
	if err == nil {
		for _, anchor := range []string{manifest.SitesAnchor, manifest.DatabasesAnchor} {
			var aerr error
			if !strings.Contains(string(data), anchor) {
				aerr = manifest.ErrAnchorMissing
			}
			checks = append(checks, check{fmt.Sprintf("manifest has %q", anchor), aerr})
		}
	}

	if cfg.ProvisionCommand != "" {
		checks = append(checks, check{"provision command configured", nil})
	} else {
		var verr error
		if !exec.CommandExists("vagrant") {
			verr = errors.New("vagrant not found in PATH")
		}
		checks = append(checks, check{"vagrant installed", verr})
	}
	return checks
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
