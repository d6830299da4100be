package crypto

// newTestKeyChain returns a key chain with cheap parameters so tests do not
// spend seconds in PBKDF2.
func newTestKeyChain() *keyChainService {
	return NewKeyChainService(
		WithIterations(1000),
		WithMasterKeyIterations(1000),
		WithBiometricParams(2, 1000),
		WithRSABits(1024),
	).(*keyChainService)
}
