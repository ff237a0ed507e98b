package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/objstoreresearch/osk/pkg/objstore"
)

var statCmdConfig struct {
	generation int64
}

var statCmd = &cobra.Command{
	Use:   "stat <bucket> [object]",
	Short: "Print the metadata of a bucket or object",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			meta, err := oskManager.Client.GetBucketMetadata(args[0])
			if err != nil {
				return errors.Wrap(err, "Failed to stat bucket")
			}
			fmt.Println(meta)
			return nil
		}

		var params []objstore.GetObjectMetadataParam
		if statCmdConfig.generation != 0 {
			params = append(params, objstore.Generation(statCmdConfig.generation))
		}
		meta, err := oskManager.Client.GetObjectMetadata(args[0], args[1], params...)
		if err != nil {
			return errors.Wrap(err, "Failed to stat object")
		}
		fmt.Println(meta)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statCmd)
	statCmd.Flags().Int64Var(&statCmdConfig.generation, "generation", 0, "object generation to stat")
}
