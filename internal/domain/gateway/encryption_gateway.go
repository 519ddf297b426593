package gateway

// EncryptionGateway hashes and verifies passwords.
type EncryptionGateway interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hash string) bool
}
