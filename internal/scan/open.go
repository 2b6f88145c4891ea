package scan

import (
	"os/exec"
	"runtime"
)

// OpenInViewer asks the host operating system to open the file with its
// default viewer. Only the process launch is checked; whatever the viewer
// does afterwards is out of scope.
func OpenInViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
