package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on requests that require an authenticated user.
const AccessTokenHeaderName = "access_token"
