package entity

// StoredFile is a file as the storage provider reports it. The ID is an
// opaque provider-assigned identifier.
type StoredFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TokenPair is the result of an OAuth2 authorization-code exchange.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
