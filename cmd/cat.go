package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/objstoreresearch/osk/pkg/objstore"
)

var catCmdConfig struct {
	offset     int64
	length     int64
	generation int64
}

var catCmd = &cobra.Command{
	Use:   "cat <bucket> <object>",
	Short: "Print the contents of an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		begin := catCmdConfig.offset
		end := begin + catCmdConfig.length
		if catCmdConfig.length <= 0 {
			// Stat first to learn the object size, then read to the end.
			meta, err := oskManager.Client.GetObjectMetadata(args[0], args[1])
			if err != nil {
				return errors.Wrap(err, "Failed to stat object")
			}
			end = meta.Size
		}

		var params []objstore.ReadObjectRangeParam
		if catCmdConfig.generation != 0 {
			params = append(params, objstore.Generation(catCmdConfig.generation))
		}

		resp, err := oskManager.Client.ReadObjectRange(args[0], args[1], begin, end, params...)
		if err != nil {
			return errors.Wrap(err, "Failed to read object")
		}
		os.Stdout.Write(resp.Contents)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
	catCmd.Flags().Int64Var(&catCmdConfig.offset, "offset", 0, "first byte to read")
	catCmd.Flags().Int64Var(&catCmdConfig.length, "length", 0, "number of bytes to read (0 means to the end)")
	catCmd.Flags().Int64Var(&catCmdConfig.generation, "generation", 0, "object generation to read")
}
