package model

// Token is one NFT as returned by the API
type Token struct {
	Owner    string  `json:"owner"`
	TokenID  string  `json:"tokenId"`
	TokenURI *string `json:"tokenUri,omitempty"`
}

// TokensResponse represents response for GET /api/tokens and /api/tokens/all
type TokensResponse struct {
	Owner  string  `json:"owner,omitempty"`
	Tokens []Token `json:"tokens"`
}

// NftResponse represents response for GET /api/nft
type NftResponse struct {
	TokenID  string  `json:"tokenId"`
	Owner    string  `json:"owner"`
	TokenURI *string `json:"tokenUri,omitempty"`
}

// ContractResponse represents response for GET /api/contract
type ContractResponse struct {
	Address   string `json:"address"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	NumTokens uint64 `json:"numTokens"`
}
