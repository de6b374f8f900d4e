package sitelog

// SafeExecute runs op and returns its result. If op fails or panics, message
// is logged at error level with the failure as cause and fallback is
// returned. A nil logger falls back to a "SafeExecute" prefixed default.
func SafeExecute[T any](l Logger, op func() (T, error), fallback T, message string) (result T) {
	if l == nil {
		l = New(Options{Prefix: "SafeExecute"})
	}

	defer func() {
		if r := recover(); r != nil {
			l.Error(message, r)
			result = fallback
		}
	}()

	v, err := op()
	if err != nil {
		l.Error(message, err)
		return fallback
	}
	return v
}
