package domain

// Credentials is the operator's username and password pair.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Digest is the opaque value stored in place of the raw credentials.
type Digest string
