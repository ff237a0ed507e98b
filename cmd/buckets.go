package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/objstoreresearch/osk/pkg/objstore"
)

var bucketsCmdConfig struct {
	project string
	prefix  string
	max     int64
}

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List the buckets of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		var params []objstore.ListBucketsParam
		if bucketsCmdConfig.prefix != "" {
			params = append(params, objstore.Prefix(bucketsCmdConfig.prefix))
		}
		if bucketsCmdConfig.max > 0 {
			params = append(params, objstore.MaxResults(bucketsCmdConfig.max))
		}

		buckets, err := oskManager.Client.ListBuckets(bucketsCmdConfig.project, params...)
		if err != nil {
			return errors.Wrap(err, "Failed to list buckets")
		}
		for _, b := range buckets {
			fmt.Printf("%s\t%s\t%s\n", b.Name, b.Location, b.TimeCreated)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bucketsCmd)
	bucketsCmd.Flags().StringVar(&bucketsCmdConfig.project, "project", "", "project to list (default from config)")
	bucketsCmd.Flags().StringVar(&bucketsCmdConfig.prefix, "prefix", "", "only buckets whose name starts with this prefix")
	bucketsCmd.Flags().Int64Var(&bucketsCmdConfig.max, "max", 0, "maximum number of buckets to return")
}
