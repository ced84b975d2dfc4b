package styles

// Severity icons shown at the start of a toast.
var (
	IconNotifySuccess = "✔"
	IconNotifyError   = "✖"
	IconNotifyInfo    = "ℹ"
	IconNotifyWarning = "⚠"
)

// IconClose marks the toast dismiss target.
var IconClose = "✕"
