package toast

// Dispatcher is the surface views use to raise toasts. All methods replace
// the single visible toast and cannot fail.
type Dispatcher interface {
	ShowToast(message string, severity Severity)
	Success(message string)
	Error(message string)
	Info(message string)
	Warning(message string)
}

// ChannelDispatcher publishes toasts into a Channel.
type ChannelDispatcher struct {
	channel *Channel
}

var _ Dispatcher = (*ChannelDispatcher)(nil)

// NewDispatcher returns a dispatcher writing into ch.
func NewDispatcher(ch *Channel) *ChannelDispatcher {
	return &ChannelDispatcher{channel: ch}
}

// ShowToast shows message with the given severity. An empty severity is info.
func (d *ChannelDispatcher) ShowToast(message string, severity Severity) {
	d.channel.Show(message, severity)
}

func (d *ChannelDispatcher) Success(message string) { d.ShowToast(message, SeveritySuccess) }
func (d *ChannelDispatcher) Error(message string)   { d.ShowToast(message, SeverityError) }
func (d *ChannelDispatcher) Info(message string)    { d.ShowToast(message, SeverityInfo) }
func (d *ChannelDispatcher) Warning(message string) { d.ShowToast(message, SeverityWarning) }
