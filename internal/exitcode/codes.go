// Package exitcode defines named exit codes for the tools-hub CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

// Exit code constants.
const (
	Success         = 0   // Tool produced a result
	Error           = 1   // Invalid args, missing key, terminal backend error
	Exhausted       = 2   // Every model variant failed
	InvalidResponse = 3   // A model answered but the answer could not be used
	Interrupted     = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case Exhausted:
		return "Exhausted"
	case InvalidResponse:
		return "InvalidResponse"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
