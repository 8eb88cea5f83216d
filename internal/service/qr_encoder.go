package service

import (
	"encoding/base64"
	"encoding/json"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRSize = 400

// QRTokenEncoder renders a scan token as a PNG QR code wrapped in a data URL,
// ready for an <img> tag on the teacher's screen.
type QRTokenEncoder struct {
	Size int
}

func (e QRTokenEncoder) Render(token ScanToken) (string, error) {
	payload, err := json.Marshal(token)
	if err != nil {
		return "", err
	}
	size := e.Size
	if size <= 0 {
		size = defaultQRSize
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
