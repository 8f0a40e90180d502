package keygen

// Security parameters of the protocol, kappa = 256 bits.
const (
	// SecurityBits is kappa.
	SecurityBits = 256

	// SecurityBytes is the width of rid_i and of the decommitment nonce.
	SecurityBytes = SecurityBits / 8

	// ChainCodeSize is the width of a BIP-32 chain code contribution.
	ChainCodeSize = 32

	// MaxParties bounds the party count; indices are uint16.
	MaxParties = 1<<16 - 1
)
