package externalapi

// BlockInsertionResult is auxiliary data returned from ValidateAndInsertBlock
type BlockInsertionResult struct {
	BlockHash  *DomainHash
	Height     uint64
	BecameBest bool

	// AlreadyRetained is set when the block was retained before this call,
	// in which case nothing was inserted
	AlreadyRetained bool

	// PrunedBlocks are the blocks removed from memory by the retention
	// policy as a consequence of this insertion
	PrunedBlocks []*DomainHash
}
