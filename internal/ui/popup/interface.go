package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is the contract for modal popup components: the help overlay and
// the run picker implement it, and the app's popup manager drives them
// through this interface without knowing which is open.
type Popup interface {
	// Init returns any initial command (e.g., focus the run path input).
	Init() tea.Cmd

	// Update handles messages and returns the updated popup plus a command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup interior, without outer border or centering.
	View() string

	// SetSize tells the popup how much room the terminal offers.
	SetSize(width, height int)
}
