package output

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action while a spinner with title is shown on a TTY.
// Off a TTY the action runs directly. The spinner never interrupts the action.
func RunWithSpinner(title string, action func() error) error {
	if !IsTTY() {
		return action()
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Action(func() {
			actionErr = action()
		}).
		Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	return actionErr
}
