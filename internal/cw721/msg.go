package cw721

// InstantiateMsg is the init payload of the contract.
type InstantiateMsg struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Minter string `json:"minter"`
}

// Token is one NFT as reported by the contract.
type Token struct {
	Owner    string  `json:"owner"`
	TokenID  string  `json:"token_id"`
	TokenURI *string `json:"token_uri,omitempty"`
}

// ExecuteMsg holds exactly one of the contract's execute variants.
type ExecuteMsg struct {
	Mint        *MintMsg        `json:"mint,omitempty"`
	TransferNft *TransferNftMsg `json:"transfer_nft,omitempty"`
	SendNft     *SendNftMsg     `json:"send_nft,omitempty"`
}

type MintMsg struct {
	Token Token `json:"token"`
}

type TransferNftMsg struct {
	TokenID string `json:"token_id"`
	To      string `json:"to"`
}

// SendNftMsg transfers a token to a contract and calls its receive hook with Msg.
// Msg is encoded as base64, like a CosmWasm Binary.
type SendNftMsg struct {
	TokenID  string `json:"token_id"`
	Contract string `json:"contract"`
	Msg      []byte `json:"msg"`
}

// QueryMsg holds exactly one of the contract's query variants.
type QueryMsg struct {
	OwnerOf      *TokenQuery     `json:"owner_of,omitempty"`
	NumTokens    *struct{}       `json:"num_tokens,omitempty"`
	ContractInfo *struct{}       `json:"contract_info,omitempty"`
	NftInfo      *TokenQuery     `json:"nft_info,omitempty"`
	Tokens       *TokensQuery    `json:"tokens,omitempty"`
	AllTokens    *AllTokensQuery `json:"all_tokens,omitempty"`
}

type TokenQuery struct {
	TokenID string `json:"token_id"`
}

type TokensQuery struct {
	Owner      string  `json:"owner"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type AllTokensQuery struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type TokensResponse struct {
	Tokens []Token `json:"tokens"`
}

type OwnerOfResponse struct {
	Owner string `json:"owner"`
}

type NumTokensResponse struct {
	Number uint64 `json:"number"`
}

type ContractInfoResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type NftInfoResponse struct {
	TokenURI *string `json:"token_uri"`
}
