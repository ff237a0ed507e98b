package oskmgr

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func Example() {
	mgrArgs := map[string]interface{}{}
	// ./osk.yaml is an osk configuration set up for your environment
	mgrArgs["config-file"] = "./osk.yaml"

	// Adding a custom logger is optional
	oskLogger := logrus.New()
	oskLogger.SetLevel(logrus.WarnLevel)
	mgrArgs["logger"] = oskLogger

	mgr, err := NewManager(mgrArgs)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Upload an object, then read part of it back. Transient service
	// failures are retried under the configured policies.
	if _, err := mgr.Client.InsertObject("my-bucket", "hello.txt", []byte("hello, world")); err != nil {
		fmt.Printf("Upload failed: %v\n", err)
		os.Exit(1)
	}

	resp, err := mgr.Client.ReadObjectRange("my-bucket", "hello.txt", 0, 5)
	if err != nil {
		fmt.Printf("Read failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(resp.Contents))
}
