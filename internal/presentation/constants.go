package presentation

const (
	// VideoIDParam is the route parameter carrying the target video id.
	VideoIDParam = "videoId"

	// IdentityHeader carries the caller identity decided by the upstream
	// auth layer; this service only parses it, it never authenticates.
	IdentityHeader = "X-User-Id"

	// IdentityKey is the echo context key the identity middleware sets.
	IdentityKey = "identity"
)
