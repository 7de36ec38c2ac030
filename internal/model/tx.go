package model

// MintRequest represents request for POST /api/mint.
// Sender defaults to the configured minter.
type MintRequest struct {
	Sender   string  `json:"sender,omitempty"`
	Owner    string  `json:"owner" binding:"required"`
	TokenID  string  `json:"tokenId" binding:"required"`
	TokenURI *string `json:"tokenUri,omitempty"`
}

// TransferRequest represents request for POST /api/transfer.
// From defaults to the wallet address.
type TransferRequest struct {
	From     string `json:"from,omitempty"`
	TokenID  string `json:"tokenId" binding:"required"`
	Receiver string `json:"receiver" binding:"required"`
}

// TxResponse represents response for POST /api/mint and /api/transfer
type TxResponse struct {
	TxHash string `json:"txHash"`
}

// InstantiateRequest represents request for POST /api/instantiate.
// A zero CodeID falls back to the network's codeId.
type InstantiateRequest struct {
	CodeID uint64 `json:"codeId,omitempty"`
}

// InstantiateResponse represents response for POST /api/instantiate
type InstantiateResponse struct {
	ContractAddress string `json:"contractAddress"`
	CodeID          uint64 `json:"codeId"`
}
