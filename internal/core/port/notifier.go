package port

// Notifier signals run outcomes to the user-facing side of the console. It is
// not part of run correctness; the engine never consumes a return value.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
	Info(title, description string)
}
