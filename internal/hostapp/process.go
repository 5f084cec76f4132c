package hostapp

import (
	"fmt"

	"github.com/mitchellh/go-ps"
)

// executableNames are the process names the host runs under.
var executableNames = []string{"gnuradio-companion", "gnuradio-compan"}

// RunningPIDs returns the PIDs of running host application instances.
// File swaps while the host runs take effect only after a restart, and a
// mid-session swap can serve stale bytecode, so callers warn when this is
// non-empty.
func RunningPIDs() ([]int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var pids []int
	for _, p := range processes {
		for _, name := range executableNames {
			if p.Executable() == name {
				pids = append(pids, p.Pid())
				break
			}
		}
	}
	return pids, nil
}
