// The osk command-line tool. We structure it as a single executable with
// subcommands, as is common for cloud utilities; all of the interesting
// behavior lives in pkg/objstore and the transport packages.
package main

import "github.com/objstoreresearch/osk/cmd"

func main() {
	cmd.Execute()
}
