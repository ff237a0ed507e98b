package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/objstoreresearch/osk/pkg/objstore"
)

var aclCmdConfig struct {
	generation int64
}

var aclCmd = &cobra.Command{
	Use:   "acl <bucket> <object>",
	Short: "List the access control entries of an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var params []objstore.ListObjectAclParam
		if aclCmdConfig.generation != 0 {
			params = append(params, objstore.Generation(aclCmdConfig.generation))
		}

		acls, err := oskManager.Client.ListObjectAcl(args[0], args[1], params...)
		if err != nil {
			return errors.Wrap(err, "Failed to list object ACL")
		}
		for _, acl := range acls {
			fmt.Printf("%s\t%s\n", acl.Entity, acl.Role)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aclCmd)
	aclCmd.Flags().Int64Var(&aclCmdConfig.generation, "generation", 0, "object generation to inspect")
}
