package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the sealing password is prompted at runtime and stored in memory - use GetPasswordBytes()
type Config struct {
	Port             string        `envconfig:"PORT" default:"8080"`
	Network          string        `envconfig:"NETWORK"`
	NetworksFile     string        `envconfig:"NETWORKS_FILE"`
	Contract         string        `envconfig:"CONTRACT"`
	Minter           string        `envconfig:"MINTER"`
	StorageBackend   string        `envconfig:"STORAGE_BACKEND" default:"file"`
	StoragePath      string        `envconfig:"STORAGE_PATH" default:"wallet.json"`
	SealMnemonic     bool          `envconfig:"SEAL_MNEMONIC" default:"false"`
	TxConfirmTimeout time.Duration `envconfig:"TX_CONFIRM_TIMEOUT" default:"60s"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
// Values from a .env file in the working directory are applied first; real
// environment variables win over them.
func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	switch c.StorageBackend {
	case "file", "badger":
	default:
		return fmt.Errorf("unsupported storage backend %q", c.StorageBackend)
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetContract returns the deployed cw721 contract address
func GetContract() string {
	return Get().Contract
}

// GetMinter returns the address used as sender for mint operations
func GetMinter() string {
	return Get().Minter
}

// GetTxConfirmTimeout returns how long to wait for a broadcast tx to be committed
func GetTxConfirmTimeout() time.Duration {
	return Get().TxConfirmTimeout
}

// SelectedNetwork resolves NETWORK against the built-in table extended by NETWORKS_FILE.
func SelectedNetwork() (NetworkConfig, error) {
	networks, err := LoadNetworks(Get().NetworksFile)
	if err != nil {
		return NetworkConfig{}, err
	}
	return SelectNetwork(networks, Get().Network)
}

var passwordBytes []byte

// PromptForPassword prompts the user for the mnemonic sealing password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter wallet password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// GetPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use.
func GetPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
