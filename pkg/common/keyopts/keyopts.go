package keyopts

// KeyData is the stored metadata of one key: its SKI and the optional
// human-readable label supplied at generation time.
type KeyData struct {
	SKI   string
	Label string
}

// Options is a key/value bag addressing a key. "id" carries the logical
// key ID; "label" an optional label recorded alongside it.
type Options interface {
	Set(kVs ...interface{}) (Options, error)
	Get(key string) (interface{}, bool)
}

// KeyOpts manages key metadata referred to by a logical key ID.
type KeyOpts interface {
	// Import records the metadata (the SKI, plus anything carried in
	// opts) for the key ID in opts.
	Import(ski string, opts Options) error

	// Get returns the metadata of the key ID in opts.
	Get(opts Options) (*KeyData, error)

	// Delete removes the metadata of the key ID in opts.
	Delete(opts Options) error
}
