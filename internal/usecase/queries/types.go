package queries

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// NormalizePage clamps offset pagination parameters to sane bounds.
func NormalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}
