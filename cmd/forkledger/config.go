package main

import (
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/forkledger/infrastructure/config"
	"github.com/pkg/errors"
)

const (
	startSubCmd  = "start"
	statusSubCmd = "status"
	genKeySubCmd = "genkey"
)

type configFlags struct {
	config.NetworkFlags
}

type startConfig struct {
	config.Flags
	MiningAddr    string        `long:"miningaddr" description:"Address paid by the coinbase of generated blocks"`
	Generate      bool          `long:"generate" description:"Generate a block over the best block every --blockinterval"`
	BlockInterval time.Duration `long:"blockinterval" description:"Interval between generated blocks (default: the network's target time per block)"`

	resolved *config.Config
}

type statusConfig struct {
	config.Flags
	Address string `long:"address" short:"a" description:"Show the balance of this address at the best block"`

	resolved *config.Config
}

type genKeyConfig struct {
	Passphrase bool `long:"passphrase" description:"Prompt for a BIP-39 passphrase protecting the mnemonic"`
	config.NetworkFlags
}

func parseCommandLine() (subCommand string, conf interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	startConf := &startConfig{Flags: *config.DefaultFlags()}
	parser.AddCommand(startSubCmd, "Runs the chain store",
		"Replays the block archive and optionally generates a block every --blockinterval", startConf)

	statusConf := &statusConfig{Flags: *config.DefaultFlags()}
	parser.AddCommand(statusSubCmd, "Shows the state of the archived chain",
		"Replays the block archive and prints the best block, and optionally the balance of an address", statusConf)

	genKeyConf := &genKeyConfig{}
	parser.AddCommand(genKeySubCmd, "Generates a new key",
		"Generates a BIP-39 mnemonic and prints the private key and address derived from it", genKeyConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	switch parser.Command.Active.Name {
	case startSubCmd:
		combineNetworkFlags(&startConf.NetworkFlags, &cfg.NetworkFlags)
		startConf.resolved, err = startConf.Resolve(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		conf = startConf
	case statusSubCmd:
		combineNetworkFlags(&statusConf.NetworkFlags, &cfg.NetworkFlags)
		statusConf.resolved, err = statusConf.Resolve(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		conf = statusConf
	case genKeySubCmd:
		combineNetworkFlags(&genKeyConf.NetworkFlags, &cfg.NetworkFlags)
		err := genKeyConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		conf = genKeyConf
	}

	return parser.Command.Active.Name, conf
}

func combineNetworkFlags(dst, src *config.NetworkFlags) {
	dst.Testnet = dst.Testnet || src.Testnet
	dst.Simnet = dst.Simnet || src.Simnet
	dst.Devnet = dst.Devnet || src.Devnet
	if dst.OverrideDAGParamsFile == "" {
		dst.OverrideDAGParamsFile = src.OverrideDAGParamsFile
	}
}
