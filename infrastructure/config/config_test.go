package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kaspanet/forkledger/domain/dagconfig"
)

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		name         string
		flags        NetworkFlags
		expectedName string
		expectError  bool
	}{
		{name: "default is mainnet", flags: NetworkFlags{}, expectedName: dagconfig.MainnetParams.Name},
		{name: "testnet", flags: NetworkFlags{Testnet: true}, expectedName: dagconfig.TestnetParams.Name},
		{name: "simnet", flags: NetworkFlags{Simnet: true}, expectedName: dagconfig.SimnetParams.Name},
		{name: "devnet", flags: NetworkFlags{Devnet: true}, expectedName: dagconfig.DevnetParams.Name},
		{name: "two networks", flags: NetworkFlags{Testnet: true, Devnet: true}, expectError: true},
	}

	for _, test := range tests {
		err := test.flags.ResolveNetwork(nil)
		if test.expectError {
			if err == nil {
				t.Fatalf("%s: expected an error", test.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: ResolveNetwork: %+v", test.name, err)
		}
		if test.flags.NetParams().Name != test.expectedName {
			t.Fatalf("%s: expected network %s, got %s", test.name, test.expectedName, test.flags.NetParams().Name)
		}
	}
}

func writeOverrideFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "override.json")
	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("WriteFile: %+v", err)
	}
	return path
}

func TestOverrideDAGParams(t *testing.T) {
	path := writeOverrideFile(t, `{"cutoffAge": 3, "coinbaseReward": 7, "targetTimePerBlockInMilliSeconds": 250}`)

	devnetFlags := NetworkFlags{Devnet: true, OverrideDAGParamsFile: path}
	err := devnetFlags.ResolveNetwork(nil)
	if err != nil {
		t.Fatalf("ResolveNetwork: %+v", err)
	}
	params := devnetFlags.NetParams()
	if params.CutoffAge != 3 || params.CoinbaseReward != 7 || params.TargetTimePerBlock != 250*time.Millisecond {
		t.Fatalf("params were not overridden: %+v", params)
	}
	if dagconfig.DevnetParams.CutoffAge == 3 {
		t.Fatalf("overriding changed the package-level devnet params")
	}

	testnetFlags := NetworkFlags{Testnet: true, OverrideDAGParamsFile: path}
	if testnetFlags.ResolveNetwork(nil) == nil {
		t.Fatalf("ResolveNetwork: expected an error when overriding params outside devnet")
	}

	unknownFieldFlags := NetworkFlags{Devnet: true, OverrideDAGParamsFile: writeOverrideFile(t, `{"k": 18}`)}
	if unknownFieldFlags.ResolveNetwork(nil) == nil {
		t.Fatalf("ResolveNetwork: expected an error for an unknown param")
	}
}

func TestResolvePaths(t *testing.T) {
	cfgFlags := DefaultFlags()
	cfgFlags.AppDir = t.TempDir()
	cfgFlags.Simnet = true
	cfg, err := cfgFlags.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve: %+v", err)
	}
	netDir := filepath.Join(cfgFlags.AppDir, dagconfig.SimnetParams.Name)
	if cfg.DataDir != filepath.Join(netDir, defaultDataDirname) {
		t.Fatalf("unexpected data directory %s", cfg.DataDir)
	}
	if cfg.LogFile != filepath.Join(netDir, defaultLogDirname, defaultLogFilename) {
		t.Fatalf("unexpected log file %s", cfg.LogFile)
	}

	badLevel := DefaultFlags()
	badLevel.DebugLevel = "loud"
	if _, err := badLevel.Resolve(nil); err == nil {
		t.Fatalf("Resolve: expected an error for an invalid debug level")
	}
}
