package consensushashing

import (
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/hashes"
	"github.com/kaspanet/forkledger/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// BlockHash returns the given block's hash. It commits to the header, the
// coinbase and every regular transaction including their signatures.
func BlockHash(block *externalapi.DomainBlock) *externalapi.DomainHash {
	writer := hashes.NewBlockHashWriter()
	err := serialization.WriteBlock(writer, block)
	if err != nil {
		// It seems like this could only happen if the writer returned an error.
		// and this writer should never return an error (no allocations or possible failures)
		// the only non-writer error path here is a block without a header or coinbase
		panic(errors.Wrap(err, "this should never happen. Hash digest should never return an error"))
	}

	return writer.Finalize()
}
