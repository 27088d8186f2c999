package miningmanager

import (
	"github.com/kaspanet/forkledger/domain/consensus"
	"github.com/kaspanet/forkledger/domain/miningmanager/blocktemplatebuilder"
)

// Factory instantiates new mining managers
type Factory interface {
	NewMiningManager(consensus consensus.Consensus) MiningManager
}

type factory struct{}

// NewMiningManager instantiates a new mining manager over consensus and its
// transaction pool
func (f *factory) NewMiningManager(consensus consensus.Consensus) MiningManager {
	blockTemplateBuilder := blocktemplatebuilder.New(consensus)

	return &miningManager{
		consensus:            consensus,
		blockTemplateBuilder: blockTemplateBuilder,
	}
}

// NewFactory creates a new mining manager factory
func NewFactory() Factory {
	return &factory{}
}
