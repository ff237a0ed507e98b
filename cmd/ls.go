package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/objstoreresearch/osk/pkg/objstore"
)

var lsCmdConfig struct {
	prefix    string
	delimiter string
	max       int64
}

var lsCmd = &cobra.Command{
	Use:   "ls <bucket>",
	Short: "List the objects in a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var params []objstore.ListObjectsParam
		if lsCmdConfig.prefix != "" {
			params = append(params, objstore.Prefix(lsCmdConfig.prefix))
		}
		if lsCmdConfig.delimiter != "" {
			params = append(params, objstore.Delimiter(lsCmdConfig.delimiter))
		}
		if lsCmdConfig.max > 0 {
			params = append(params, objstore.MaxResults(lsCmdConfig.max))
		}

		items, err := oskManager.Client.ListObjects(args[0], params...)
		if err != nil {
			return errors.Wrap(err, "Failed to list objects")
		}
		for _, obj := range items {
			fmt.Printf("%12d\t%s\t%s\n", obj.Size, obj.Updated, obj.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVar(&lsCmdConfig.prefix, "prefix", "", "only objects whose name starts with this prefix")
	lsCmd.Flags().StringVar(&lsCmdConfig.delimiter, "delimiter", "", "group results sharing a prefix up to this delimiter")
	lsCmd.Flags().Int64Var(&lsCmdConfig.max, "max", 0, "maximum number of objects to return")
}
