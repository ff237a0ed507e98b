package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/objstoreresearch/osk/pkg/objstore"
)

var rmCmdConfig struct {
	generation int64
}

var rmCmd = &cobra.Command{
	Use:   "rm <bucket> <object>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var params []objstore.DeleteObjectParam
		if rmCmdConfig.generation != 0 {
			params = append(params, objstore.Generation(rmCmdConfig.generation))
		}
		if err := oskManager.Client.DeleteObject(args[0], args[1], params...); err != nil {
			return errors.Wrap(err, "Failed to delete object")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().Int64Var(&rmCmdConfig.generation, "generation", 0, "object generation to delete")
}
