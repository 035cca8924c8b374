package oned

import barcode "github.com/craig-b/ZXing.Encoders"

func init() {
	barcode.RegisterWriter(barcode.FormatCode128, func() barcode.Writer { return NewCode128Writer() })
	barcode.RegisterWriter(barcode.FormatCode39, func() barcode.Writer { return NewCode39Writer() })
	barcode.RegisterWriter(barcode.FormatCode93, func() barcode.Writer { return NewCode93Writer() })
	barcode.RegisterWriter(barcode.FormatEAN13, func() barcode.Writer { return NewEAN13Writer() })
	barcode.RegisterWriter(barcode.FormatEAN8, func() barcode.Writer { return NewEAN8Writer() })
	barcode.RegisterWriter(barcode.FormatUPCA, func() barcode.Writer { return NewUPCAWriter() })
	barcode.RegisterWriter(barcode.FormatUPCE, func() barcode.Writer { return NewUPCEWriter() })
	barcode.RegisterWriter(barcode.FormatITF, func() barcode.Writer { return NewITFWriter() })
	barcode.RegisterWriter(barcode.FormatCodabar, func() barcode.Writer { return NewCodabarWriter() })
	barcode.RegisterWriter(barcode.FormatMSI, func() barcode.Writer { return NewMSIWriter() })
	barcode.RegisterWriter(barcode.FormatPlessey, func() barcode.Writer { return NewPlesseyWriter() })
}
