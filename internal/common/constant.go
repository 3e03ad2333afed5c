package common

// AuthorizationHeaderName carries the bearer access token on inbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName is echoed back on every response.
const RequestIDHeaderName = "X-Request-ID"

// UsersCollection is the document collection holding user records.
const UsersCollection = "users"
