package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	logging "github.com/jaytlin4/Data-Visualizer/internal/infra/log"
)

// exitFn is swapped out in tests so the fail-fast path can be observed
// without killing the test process.
var exitFn = os.Exit

// failDownload reports a download error to the operator and terminates
// the process with a non-zero exit code. A missing dataset is
// unrecoverable for this tool's single-shot workflow.
func failDownload(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error downloading file: %v\n", err)
	logging.LogError("Download failed", zap.Error(err))
	exitFn(1)
}
