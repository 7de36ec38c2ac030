package model

// SealedSecret is the JSON envelope stored in place of a plaintext secret when
// mnemonic sealing is enabled.
type SealedSecret struct {
	Version    int    `json:"version"`
	ScryptN    int    `json:"scryptN"`
	ScryptR    int    `json:"scryptR"`
	ScryptP    int    `json:"scryptP"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}
