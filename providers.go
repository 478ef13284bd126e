package supabase

import "time"

// Capability contracts for the auxiliary Supabase services. The Client ships
// adapters backed by the supabase-community clients (see AuthProvider,
// StorageProvider and FunctionsProvider on Client), but callers may swap in
// their own implementations, for example to stub these services in tests.

// Session is an authenticated session as handed back by an AuthProvider.
// Feed AccessToken to Client.WithJWT to derive an RLS-scoped client.
type Session struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int
}

// User describes the principal behind a session.
type User struct {
	ID       string
	Email    string
	Metadata map[string]interface{}
}

// AuthProvider is the contract for authentication backends.
type AuthProvider interface {
	// SignUp registers a new user and returns the resulting session.
	SignUp(email, password string) (Session, error)

	// SignIn authenticates with email and password.
	SignIn(email, password string) (Session, error)

	// SignOut invalidates the current session.
	SignOut() error

	// User returns the principal for the current session.
	User() (User, error)

	// Refresh exchanges a refresh token for a fresh session.
	Refresh(refreshToken string) (Session, error)
}

// StorageObject is a file or folder listed from a storage bucket.
type StorageObject struct {
	Name      string
	CreatedAt string
	UpdatedAt string
}

// StorageProvider is the contract for object storage backends.
type StorageProvider interface {
	// Upload stores data under bucket/path and returns the object path.
	Upload(bucket, path string, data []byte, contentType string) (string, error)

	// Download fetches the object at bucket/path.
	Download(bucket, path string) ([]byte, error)

	// Remove deletes the given objects from a bucket.
	Remove(bucket string, paths ...string) error

	// List returns up to limit objects under a bucket prefix. A non-positive
	// limit falls back to DefaultListLimit.
	List(bucket, prefix string, limit int) ([]StorageObject, error)

	// PublicURL returns the public URL for an object. No network access.
	PublicURL(bucket, path string) string

	// SignedURL creates a URL granting temporary access to an object.
	SignedURL(bucket, path string, expiresIn time.Duration) (string, error)
}

// FunctionsProvider is the contract for edge function invocation.
type FunctionsProvider interface {
	// Invoke calls the named function with a JSON-encodable body and returns
	// the raw response payload.
	Invoke(name string, body interface{}) ([]byte, error)
}
