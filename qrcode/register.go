package qrcode

import barcode "github.com/craig-b/ZXing.Encoders"

func init() {
	barcode.RegisterWriter(barcode.FormatQRCode, func() barcode.Writer {
		return NewWriter()
	})
}
