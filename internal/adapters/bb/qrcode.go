package bb

import (
	qr "github.com/skip2/go-qrcode"
)

// QRCodePNG gera a imagem PNG do QR Code a partir do pixCopiaECola da cobrança
func QRCodePNG(charge *Charge, size int) ([]byte, error) {
	if charge == nil || charge.PixCopyPaste == "" {
		return nil, &InvariantError{Message: "cobrança sem pixCopiaECola"}
	}
	return qr.Encode(charge.PixCopyPaste, qr.Medium, size)
}
