package keystore

// KeystoreFactory creates Keystore instances from a backend configuration.
type KeystoreFactory interface {
	NewKeystore(cfg interface{}) Keystore
}
