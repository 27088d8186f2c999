package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaspanet/forkledger/domain/consensus/utils/txsigning"
	"github.com/kaspanet/forkledger/util"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/term"
)

const mnemonicEntropyBits = 256

// privateKeyDomain separates private key derivation from any other use of
// the BIP-39 seed
var privateKeyDomain = []byte("ForkledgerPrivateKey")

func genKey(conf *genKeyConfig) error {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return errors.WithStack(err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return errors.WithStack(err)
	}

	passphrase := ""
	if conf.Passphrase {
		passphrase, err = readPassphrase("Enter a passphrase for the mnemonic: ")
		if err != nil {
			return err
		}
	}

	privateKey, err := privateKeyFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return err
	}
	keyPair, err := txsigning.KeyPairFromPrivateKey(privateKey)
	if err != nil {
		return err
	}
	scriptPublicKey, err := txsigning.ScriptPublicKey(keyPair)
	if err != nil {
		return err
	}
	address, err := util.NewAddressPublicKey(scriptPublicKey, conf.NetParams().Bech32Prefix)
	if err != nil {
		return err
	}

	fmt.Printf("Mnemonic (write it down and keep it secret):\n%s\n\n", mnemonic)
	fmt.Printf("Private key:\n%s\n\n", hex.EncodeToString(privateKey))
	fmt.Printf("Address:\n%s\n", address)
	return nil
}

func privateKeyFromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	hasher, err := blake2b.New256(privateKeyDomain)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	hasher.Write(seed)
	return hasher.Sum(nil), nil
}

// readPassphrase reads a passphrase without echoing it, restoring the
// terminal state if interrupted
func readPassphrase(prompt string) (string, error) {
	stdin := int(syscall.Stdin)
	initialTermState, err := term.GetState(stdin)
	if err != nil {
		return "", errors.Wrap(err, "the passphrase can only be read from a terminal")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer close(c)
	defer signal.Stop(c)
	go func() {
		if _, ok := <-c; ok {
			_ = term.Restore(stdin, initialTermState)
			os.Exit(1)
		}
	}()

	fmt.Print(prompt)
	passphrase, err := term.ReadPassword(stdin)
	fmt.Println()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(passphrase), nil
}
