package common

// AuthorizationHeaderName is the HTTP header and gRPC metadata key that
// carries the admin session token.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the token in the Authorization value.
const BearerPrefix = "Bearer "

// AdminSessionType is the "type" claim stamped on admin session tokens.
const AdminSessionType = "ADMIN_SESSION"
