// internal/version/version.go
package version

// Version is stamped at release; keep in sync with tags.
const Version = "0.1.0"
