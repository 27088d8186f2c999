package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/forkledger/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultLogFilename     = "forkledger.log"
	defaultErrLogFilename  = "forkledger_err.log"
	defaultLogLevel        = "info"
	defaultDataDirname     = "data"
	defaultLogDirname      = "logs"
	defaultArchiveCacheMiB = 64
)

// DefaultAppDir is the default home directory for forkledger.
var DefaultAppDir = defaultAppDir()

func defaultAppDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".forkledger"
	}
	return filepath.Join(homeDir, ".forkledger")
}

// Flags defines the configuration options shared by every command that
// opens the chain store.
type Flags struct {
	AppDir          string `short:"b" long:"appdir" description:"Directory to store data"`
	LogDir          string `long:"logdir" description:"Directory to log output."`
	DebugLevel      string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	NoPruning       bool   `long:"nopruning" description:"Keep every block and its UTXO set in memory"`
	ArchiveCacheMiB int    `long:"archivecache" description:"Size of the block archive cache in megabytes"`
	MetricsListen   string `long:"metricslisten" description:"Serve prometheus metrics on this interface/port, e.g. localhost:9090"`
	NetworkFlags
}

// Config is the resolved form of Flags
type Config struct {
	*Flags
	DataDir    string
	LogFile    string
	ErrLogFile string
}

// DefaultFlags returns the default values for Flags
func DefaultFlags() *Flags {
	return &Flags{
		AppDir:          DefaultAppDir,
		DebugLevel:      defaultLogLevel,
		ArchiveCacheMiB: defaultArchiveCacheMiB,
	}
}

// Resolve selects the network, derives every path under AppDir and applies
// DebugLevel to the registered subsystems
func (cfgFlags *Flags) Resolve(parser *flags.Parser) (*Config, error) {
	err := cfgFlags.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}
	if cfgFlags.ArchiveCacheMiB <= 0 {
		return nil, errors.Errorf("archivecache must be positive, got %d", cfgFlags.ArchiveCacheMiB)
	}

	cfgFlags.AppDir = cleanAndExpandPath(cfgFlags.AppDir)
	netDir := filepath.Join(cfgFlags.AppDir, cfgFlags.NetParams().Name)
	if cfgFlags.LogDir == "" {
		cfgFlags.LogDir = filepath.Join(netDir, defaultLogDirname)
	}
	cfgFlags.LogDir = cleanAndExpandPath(cfgFlags.LogDir)

	err = logger.ParseAndSetLogLevels(cfgFlags.DebugLevel)
	if err != nil {
		return nil, err
	}

	return &Config{
		Flags:      cfgFlags,
		DataDir:    filepath.Join(netDir, defaultDataDirname),
		LogFile:    filepath.Join(cfgFlags.LogDir, defaultLogFilename),
		ErrLogFile: filepath.Join(cfgFlags.LogDir, defaultErrLogFilename),
	}, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
