package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/forkledger/domain/dagconfig"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet               bool   `long:"testnet" description:"Use the test network"`
	Simnet                bool   `long:"simnet" description:"Use the simulation test network"`
	Devnet                bool   `long:"devnet" description:"Use the development test network"`
	OverrideDAGParamsFile string `long:"override-dag-params-file" description:"Overrides network params (allowed only on devnet)"`

	ActiveNetParams *dagconfig.Params
}

type overrideDAGParamsConfig struct {
	CutoffAge                        *uint64 `json:"cutoffAge"`
	CoinbaseReward                   *uint64 `json:"coinbaseReward"`
	TargetTimePerBlockInMilliSeconds *int64  `json:"targetTimePerBlockInMilliSeconds"`
}

// ResolveNetwork parses the network command line argument and sets ActiveNetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// ActiveNetParams is a copy, so overrides never leak into the package-level params
	params := dagconfig.MainnetParams
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		params = dagconfig.TestnetParams
	}
	if networkFlags.Simnet {
		numNets++
		params = dagconfig.SimnetParams
	}
	if networkFlags.Devnet {
		numNets++
		params = dagconfig.DevnetParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, simnet, devnet, etc.) cannot be used " +
			"together. Please choose only one network"
		err := errors.New(message)
		fmt.Fprintln(os.Stderr, err)
		if parser != nil {
			parser.WriteHelp(os.Stderr)
		}
		return err
	}
	networkFlags.ActiveNetParams = &params

	return networkFlags.overrideDAGParams()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *dagconfig.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideDAGParams() error {
	if networkFlags.OverrideDAGParamsFile == "" {
		return nil
	}

	if !networkFlags.Devnet {
		return errors.Errorf("override-dag-params-file is allowed only when using devnet")
	}

	overrideDAGParamsFile, err := os.Open(networkFlags.OverrideDAGParamsFile)
	if err != nil {
		return errors.WithStack(err)
	}
	defer overrideDAGParamsFile.Close()

	decoder := json.NewDecoder(overrideDAGParamsFile)
	decoder.DisallowUnknownFields()
	config := &overrideDAGParamsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrapf(err, "failed parsing %s", networkFlags.OverrideDAGParamsFile)
	}

	if config.CutoffAge != nil {
		networkFlags.ActiveNetParams.CutoffAge = *config.CutoffAge
	}

	if config.CoinbaseReward != nil {
		networkFlags.ActiveNetParams.CoinbaseReward = *config.CoinbaseReward
	}

	if config.TargetTimePerBlockInMilliSeconds != nil {
		if *config.TargetTimePerBlockInMilliSeconds <= 0 {
			return errors.Errorf("targetTimePerBlockInMilliSeconds must be positive, got %d",
				*config.TargetTimePerBlockInMilliSeconds)
		}
		networkFlags.ActiveNetParams.TargetTimePerBlock =
			time.Duration(*config.TargetTimePerBlockInMilliSeconds) * time.Millisecond
	}

	log.Infof("Overrode %s params from %s", networkFlags.ActiveNetParams.Name, networkFlags.OverrideDAGParamsFile)
	return nil
}
