package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/objstoreresearch/osk/pkg/objstore"
)

var putCmdConfig struct {
	ifGenerationMatch int64
}

var putCmd = &cobra.Command{
	Use:   "put <bucket> <object> <file>",
	Short: "Upload a file as an object",
	Long: `Upload the contents of a local file as a single object.

Note that inserts issued under a retrying client are not exactly-once:
a transient failure after the service applied the write can lead to the
insert being applied twice. Use --if-generation-match to guard.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		contents, err := ioutil.ReadFile(args[2])
		if err != nil {
			return errors.Wrap(err, "Failed to read "+args[2])
		}

		var params []objstore.InsertObjectMediaParam
		if cmd.Flags().Changed("if-generation-match") {
			params = append(params, objstore.IfGenerationMatch(putCmdConfig.ifGenerationMatch))
		}

		meta, err := oskManager.Client.InsertObject(args[0], args[1], contents, params...)
		if err != nil {
			return errors.Wrap(err, "Failed to upload object")
		}
		fmt.Println(meta)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
	putCmd.Flags().Int64Var(&putCmdConfig.ifGenerationMatch, "if-generation-match", 0,
		"only write if the current generation matches (0 means only-if-absent)")
}
