package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultNetwork is used when NETWORK is empty.
const DefaultNetwork = "local"

// ErrUnknownNetwork is returned when the requested network has no configuration.
var ErrUnknownNetwork = errors.New("unknown network")

// NetworkConfig describes how to reach one chain.
type NetworkConfig struct {
	ChainID       string  `yaml:"chainId" json:"chainId"`
	ChainName     string  `yaml:"chainName" json:"chainName"`
	AddressPrefix string  `yaml:"addressPrefix" json:"addressPrefix"`
	RPCURL        string  `yaml:"rpcUrl" json:"rpcUrl"`
	HTTPURL       string  `yaml:"httpUrl" json:"httpUrl"`
	FaucetURL     string  `yaml:"faucetUrl" json:"faucetUrl"`
	FeeToken      string  `yaml:"feeToken" json:"feeToken"`
	StakingToken  string  `yaml:"stakingToken" json:"stakingToken"`
	GasPrice      float64 `yaml:"gasPrice" json:"gasPrice"`
	CodeID        uint64  `yaml:"codeId,omitempty" json:"codeId,omitempty"`
}

// Networks maps a network name to its configuration. It always contains DefaultNetwork.
type Networks map[string]NetworkConfig

// BuiltinNetworks returns a fresh copy of the compiled-in network table.
func BuiltinNetworks() Networks {
	return Networks{
		"local": {
			ChainID:       "testing",
			ChainName:     "Testing",
			AddressPrefix: "cosmos",
			RPCURL:        "http://localhost:26657",
			HTTPURL:       "http://localhost:1317",
			FaucetURL:     "http://localhost:8000",
			FeeToken:      "ucosm",
			StakingToken:  "uatom",
			GasPrice:      0.025,
		},
		"malaga": {
			ChainID:       "malaga-420",
			ChainName:     "malaga-420",
			AddressPrefix: "wasm",
			RPCURL:        "https://rpc.malaga-420.cosmwasm.com:443",
			HTTPURL:       "https://api.malaga-420.cosmwasm.com",
			FaucetURL:     "https://faucet.malaga-420.cosmwasm.com",
			FeeToken:      "umlg",
			StakingToken:  "uand",
			GasPrice:      0.025,
		},
	}
}

type networksFile struct {
	Networks map[string]NetworkConfig `yaml:"networks"`
}

// LoadNetworks returns the built-in table with entries from the YAML file at path
// added or replacing built-ins of the same name. An empty path yields the built-ins.
func LoadNetworks(path string) (Networks, error) {
	networks := BuiltinNetworks()
	if path == "" {
		return networks, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file: %w", err)
	}

	var parsed networksFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse networks file: %w", err)
	}

	for name, network := range parsed.Networks {
		if err := network.Validate(); err != nil {
			return nil, fmt.Errorf("network %s: %w", name, err)
		}
		networks[name] = network
	}
	return networks, nil
}

// SelectNetwork picks a network by name. An empty name selects DefaultNetwork.
func SelectNetwork(networks Networks, name string) (NetworkConfig, error) {
	if name == "" {
		name = DefaultNetwork
	}
	network, ok := networks[name]
	if !ok {
		return NetworkConfig{}, fmt.Errorf("no configuration found for network %s: %w", name, ErrUnknownNetwork)
	}
	return network, nil
}

// Validate checks the fields required to open a signing session.
func (n NetworkConfig) Validate() error {
	switch {
	case n.ChainID == "":
		return errors.New("chainId is required")
	case n.AddressPrefix == "":
		return errors.New("addressPrefix is required")
	case n.RPCURL == "":
		return errors.New("rpcUrl is required")
	case n.FeeToken == "":
		return errors.New("feeToken is required")
	case n.GasPrice <= 0:
		return errors.New("gasPrice must be positive")
	}
	return nil
}
