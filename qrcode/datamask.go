package qrcode

// dataMaskFunc reports whether the module at (i, j) should be flipped by a
// given mask pattern.
type dataMaskFunc func(i, j int) bool

// dataMasks holds the eight standard QR Code mask predicates, indexed by
// mask pattern number.
var dataMasks = [8]dataMaskFunc{
	func(i, j int) bool { return (i+j)&0x01 == 0 },
	func(i, j int) bool { return i&0x01 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return ((i/2)+(j/3))&0x01 == 0 },
	func(i, j int) bool { return (i*j)%6 == 0 },
	func(i, j int) bool { return ((i*j)%6) < 3 },
	func(i, j int) bool { return ((i + j + ((i*j)%3)) & 0x01) == 0 },
}
