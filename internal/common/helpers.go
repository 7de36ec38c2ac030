package common

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// ErrorMessage flattens an error to its last ';'-separated segment.
// Chain errors end with the contract's own message, e.g.
// "failed to execute message; message index: 0: token_id already claimed".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ";"); i >= 0 {
		msg = msg[i+1:]
	}
	return strings.TrimLeft(msg, " \t\r\n")
}

// GenerateQRCode generates a QR code PNG for the address and returns it as base64
func GenerateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
