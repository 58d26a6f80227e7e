package interfaces

// INotifier is the queued, delayed-dismissal display mechanism the console
// shows after workflow actions. It is peripheral plumbing: implementations
// must never fail the action that triggered the notification.
type INotifier interface {
	Notify(message, level string)
}
