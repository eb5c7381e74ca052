package common

// Metadata keys carried on gRPC calls.
const (
	// APIKeyHeaderName carries the static service-to-service secret.
	APIKeyHeaderName = "x-api-key"

	// AuthorizationHeaderName carries "Bearer <token>" for user-scoped calls.
	AuthorizationHeaderName = "authorization"

	// BearerScheme is the token type returned by Login.
	BearerScheme = "bearer"
)
