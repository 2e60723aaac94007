// Package auth provides authentication for the living room API.
//
// It implements user accounts with:
//   - HS256 JWT access tokens, one hour lifetime, subject = user ID
//   - Legacy base64-derived password encoding for existing databases
//   - Argon2id password hashing (OWASP 2025 recommendation) for new
//     deployments, selected by configuration
//
// Both credential schemes can coexist in one database: VerifyStored
// recognises Argon2id hashes by their PHC prefix and treats everything
// else as the legacy encoding. There are no roles; any authenticated
// user may call any protected endpoint.
package auth
