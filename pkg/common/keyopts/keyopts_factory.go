package keyopts

// KeyOptsFactory creates KeyOpts instances from a repository configuration.
type KeyOptsFactory interface {
	NewKeyOpts(cfg interface{}) KeyOpts
}
