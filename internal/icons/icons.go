package icons

// Style picks which character set decorates severities and panels.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons is one complete character set. Values carry their trailing
// spacing so they concatenate directly with the text they decorate.
type Icons struct {
	Critical   string
	Error      string
	Warning    string
	Info       string
	Debug      string
	Trace      string
	Run        string
	Checkpoint string
	Loss       string
}

var (
	nerdIcons = Icons{
		Critical:   " ", // nf-fa-bomb
		Error:      " ", // nf-fa-times_circle
		Warning:    " ", // nf-fa-exclamation_triangle
		Info:       " ", // nf-fa-info_circle
		Debug:      " ", // nf-fa-bug
		Trace:      " ", // nf-fa-pencil
		Run:        " ", // nf-fa-folder_open
		Checkpoint: " ", // nf-fa-save
		Loss:       " ", // nf-fa-line_chart
	}

	unicodeIcons = Icons{
		Critical:   "💀 ",
		Error:      "❌ ",
		Warning:    "⚠️ ",
		Info:       "ℹ️ ",
		Debug:      "🔧 ",
		Trace:      "📝 ",
		Run:        "📂 ",
		Checkpoint: "💾 ",
		Loss:       "📉 ",
	}

	noneIcons = Icons{
		Critical: "[C] ",
		Error:    "[E] ",
		Warning:  "[W] ",
		Info:     "[I] ",
		Debug:    "[D] ",
		Trace:    "[T] ",
	}

	// The zero default; Init replaces it at startup.
	current = noneIcons
)

// Init installs the set named by the config value. Unknown names fall
// back to plain ASCII markers.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Critical returns the critical fault icon.
func Critical() string {
	return current.Critical
}

// Error returns the error fault icon.
func Error() string {
	return current.Error
}

// Warning returns the warning fault icon.
func Warning() string {
	return current.Warning
}

// Info returns the info fault icon.
func Info() string {
	return current.Info
}

// Debug returns the debug fault icon.
func Debug() string {
	return current.Debug
}

// Trace returns the trace fault icon.
func Trace() string {
	return current.Trace
}

// Run returns the run directory icon.
func Run() string {
	return current.Run
}

// Checkpoint returns the checkpoint file icon.
func Checkpoint() string {
	return current.Checkpoint
}

// Loss returns the loss chart icon.
func Loss() string {
	return current.Loss
}
