package validate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/neurodemon/neurodemon/internal/audit"
)

// ActivityLog validates the activity log file. The log reader skips lines it
// cannot parse, so damaged lines are reported as a warning with a count.
func ActivityLog(path string) Result {
	result := Result{}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddPending(audit.FileName + " not found")
			result.AddItem(StatusPending, audit.FileName, "not found, nothing recorded yet")
			return result
		}
		result.AddError(fmt.Sprintf("Activity log: %v", err))
		result.AddItem(StatusError, audit.FileName, err.Error())
		return result
	}
	defer f.Close()

	var entries, damaged int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var event audit.Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			damaged++
			continue
		}
		entries++
	}
	if err := scanner.Err(); err != nil {
		result.AddError(fmt.Sprintf("Activity log: %v", err))
		result.AddItem(StatusError, audit.FileName, err.Error())
		return result
	}

	if damaged > 0 {
		result.AddWarning(fmt.Sprintf("Activity log has %d damaged line(s)", damaged))
		result.AddItem(StatusWarning, audit.FileName, fmt.Sprintf("%d entries, %d damaged", entries, damaged))
		return result
	}

	result.AddItem(StatusSuccess, audit.FileName, fmt.Sprintf("%d entries", entries))
	return result
}
