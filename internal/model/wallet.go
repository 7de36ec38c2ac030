package model

// WalletResponse represents response for GET /api/wallet
type WalletResponse struct {
	Address string `json:"address"`
	ChainID string `json:"chainId"`
	QRCode  string `json:"qrCode,omitempty"`
}

// StateResponse represents response for GET /api/state
type StateResponse struct {
	Phase    string `json:"phase"`
	Message  string `json:"message,omitempty"`
	Address  string `json:"address,omitempty"`
	Contract string `json:"contract,omitempty"`
	ChainID  string `json:"chainId,omitempty"`
}

// FaucetResponse represents response for POST /api/faucet
type FaucetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address"`
	Denom   string `json:"denom"`
}
