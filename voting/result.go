package voting

// Result is the outcome of a user-facing operation. Message always carries a
// ✅ or ⚠️ prefix; validation failures are results, not errors.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func accepted(message string) Result {
	return Result{OK: true, Message: message}
}

func declined(message string) Result {
	return Result{OK: false, Message: message}
}
