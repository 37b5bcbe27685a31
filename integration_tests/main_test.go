package integration

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/maxkimambo/tasks/integration_tests/internal/testutil"
)

func TestMain(m *testing.M) {
	flag.Parse()

	if testutil.GetTasksBinaryPath() == "" {
		fmt.Println("tasks binary not found, integration tests will be skipped. Build it first with 'go build -o tasks .'")
	}

	os.Exit(m.Run())
}
