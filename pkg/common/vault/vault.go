package vault

// Vault stores opaque key-material blobs addressed by SKI. Secret-key blobs
// are confidential; protecting a vault's backing store is the deployer's
// obligation. The library ships an in-memory vault, hardware- or KMS-backed
// vaults satisfy the same interface.
type Vault interface {
	Import(ski string, key []byte) error
	Get(ski string) ([]byte, error)
	Delete(ski string) error
}
