package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yansircc/lochost/internal/fsutil"
	"github.com/yansircc/lochost/internal/manifest"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the sites mapped in the Homestead manifest",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(cfg.ManifestPath)
		if err != nil {
			return fsutil.AccessError(err, "read manifest %s", cfg.ManifestPath)
		}

		sites := manifest.Sites(string(data))
		if len(sites) == 0 {
			fmt.Println("No sites yet. Run `lochost host` to create one.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DOMAIN\tTARGET")
		for _, s := range sites {
			fmt.Fprintf(w, "%s\t%s\n", s.Domain, s.Target)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
