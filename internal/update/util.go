package update

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/homekeep/internal/model"
)

func dueLabel(task model.Task, now time.Time) string {
	days, ok := task.DaysUntilDue(now)
	if !ok {
		return ""
	}
	switch {
	case days < -1:
		return fmt.Sprintf("%dd overdue", -days)
	case days == -1:
		return "1d overdue"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %dd", days)
	}
}
