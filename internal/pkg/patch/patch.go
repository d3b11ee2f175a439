package patch

// Coalesce returns *p when p is set, otherwise fallback.
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
