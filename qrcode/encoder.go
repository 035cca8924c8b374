package qrcode

import (
	"fmt"
	"math"
	"strings"

	"github.com/craig-b/ZXing.Encoders/bitutil"
	"github.com/craig-b/ZXing.Encoders/charset"
	"github.com/craig-b/ZXing.Encoders/errs"
	"github.com/craig-b/ZXing.Encoders/reedsolomon"
)

const numMaskPatterns = 8

// Code holds one fully encoded QR Code symbol: its data mode, error
// correction level, version, chosen mask pattern, and rendered matrix.
type Code struct {
	Mode        Mode
	ECLevel     ErrorCorrectionLevel
	Version     *Version
	MaskPattern int
	Matrix      *bitutil.ByteMatrix
}

// alphanumericTable maps ASCII values to their alphanumeric-mode code, or
// -1 if the character is outside the 45-symbol alphanumeric alphabet.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

func alphanumericCode(code int) int {
	if code < 128 {
		return alphanumericTable[code]
	}
	return -1
}

// Params carries the optional per-encode hints that affect header
// construction and BYTE-mode transcoding: the character set for BYTE-mode
// payloads (empty means ISO-8859-1), whether to suppress the ECI
// designator that would otherwise precede a non-default character set,
// and whether to emit a GS1 FNC1-in-first-position header.
type Params struct {
	CharacterSet string
	DisableECI   bool
	GS1Format    bool
}

// Encode builds a QR Code for content at the given error-correction level
// using default encoding params. qrVersion, if positive, pins the version
// instead of choosing the smallest one that fits; maskPattern, if in
// [0, 7], pins the mask pattern instead of searching for the
// lowest-penalty one.
func Encode(content string, ecLevel ErrorCorrectionLevel, qrVersion int, maskPattern int) (*Code, error) {
	return EncodeWithParams(content, ecLevel, qrVersion, maskPattern, Params{})
}

// EncodeWithParams is Encode with explicit header/transcoding params.
//
// It reports ErrBadInput if content uses characters outside the chosen
// mode's alphabet, and ErrOverflow if content does not fit in any version
// at qrVersion (or any version at all, when qrVersion is unset).
func EncodeWithParams(content string, ecLevel ErrorCorrectionLevel, qrVersion int, maskPattern int, params Params) (*Code, error) {
	mode := chooseMode(content, params.CharacterSet == "Shift_JIS")

	headerBits := bitutil.NewBitArray(0)
	if mode == ModeByte && !params.DisableECI && params.CharacterSet != "" && params.CharacterSet != "ISO-8859-1" {
		eci := charset.GetECIByName(params.CharacterSet)
		if eci == nil {
			return nil, fmt.Errorf("qrcode: unknown character set %q: %w", params.CharacterSet, errs.BadInput)
		}
		if err := headerBits.AppendBits(uint32(ModeECI.Bits()), 4); err != nil {
			return nil, err
		}
		if err := headerBits.AppendBits(uint32(eci.Value), 8); err != nil {
			return nil, err
		}
	}
	if params.GS1Format {
		if err := headerBits.AppendBits(uint32(ModeFNC1FirstPosition.Bits()), 4); err != nil {
			return nil, err
		}
	}
	if err := headerBits.AppendBits(uint32(mode.Bits()), 4); err != nil {
		return nil, err
	}

	dataBits := bitutil.NewBitArray(0)
	numLetters, err := appendBytes(content, mode, dataBits, params.CharacterSet)
	if err != nil {
		return nil, err
	}

	var version *Version
	if qrVersion > 0 {
		version, err = GetVersionForNumber(qrVersion)
		if err != nil {
			return nil, err
		}
		ecBlocks := version.ECBlocksForLevel(ecLevel)
		numDataBytes := version.TotalCodewords - ecBlocks.TotalECCodewords()
		totalBits := headerBits.Size() + mode.CharacterCountBits(version) + dataBits.Size()
		if totalBits > numDataBytes*8 {
			return nil, fmt.Errorf("qrcode: content does not fit in version %d: %w", qrVersion, errs.Overflow)
		}
	} else {
		version, err = chooseVersion(mode, headerBits, dataBits, ecLevel)
		if err != nil {
			return nil, err
		}
	}

	countBits := mode.CharacterCountBits(version)
	if err := headerBits.AppendBits(uint32(numLetters), countBits); err != nil {
		return nil, err
	}

	headerBits.AppendBitArray(dataBits)

	ecBlocks := version.ECBlocksForLevel(ecLevel)
	totalBytes := version.TotalCodewords
	numDataBytes := totalBytes - ecBlocks.TotalECCodewords()

	if err := terminateBits(numDataBytes, headerBits); err != nil {
		return nil, err
	}

	numRSBlocks := ecBlocks.NumBlocks()
	finalBits, err := interleaveWithECBytes(headerBits, totalBytes, numDataBytes, numRSBlocks)
	if err != nil {
		return nil, err
	}

	code := &Code{
		Mode:        mode,
		ECLevel:     ecLevel,
		Version:     version,
		MaskPattern: -1,
	}

	dimension := version.DimensionForVersion()
	matrix := bitutil.NewByteMatrix(dimension, dimension)

	if maskPattern >= 0 && maskPattern < numMaskPatterns {
		code.MaskPattern = maskPattern
	} else {
		chosen, err := chooseMaskPattern(finalBits, ecLevel, version, matrix)
		if err != nil {
			return nil, err
		}
		code.MaskPattern = chosen
	}

	code.Matrix = matrix
	if err := buildMatrix(finalBits, ecLevel, version, code.MaskPattern, matrix); err != nil {
		return nil, err
	}

	return code, nil
}

func chooseVersion(mode Mode, headerBits, dataBits *bitutil.BitArray, ecLevel ErrorCorrectionLevel) (*Version, error) {
	for versionNum := 1; versionNum <= 40; versionNum++ {
		version, _ := GetVersionForNumber(versionNum)
		totalBits := headerBits.Size() + mode.CharacterCountBits(version) + dataBits.Size()
		ecBlocks := version.ECBlocksForLevel(ecLevel)
		numDataBytes := version.TotalCodewords - ecBlocks.TotalECCodewords()
		if totalBits <= numDataBytes*8 {
			return version, nil
		}
	}
	return nil, fmt.Errorf("qrcode: content does not fit in any version at level %s: %w", ecLevel, errs.Overflow)
}

func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("qrcode: data bits (%d) exceed capacity (%d): %w", bits.Size(), capacity, errs.Overflow)
	}

	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			if err := bits.AppendBits(0xEC, 8); err != nil {
				return err
			}
		} else {
			if err := bits.AppendBits(0x11, 8); err != nil {
				return err
			}
		}
	}
	return nil
}

// appendBytes packs content into bits under mode and returns the
// character-count value to place in the header: the rune count for
// NUMERIC/ALPHANUMERIC, the transcoded byte count for BYTE, and the
// Kanji-character count for KANJI.
func appendBytes(content string, mode Mode, bits *bitutil.BitArray, characterSet string) (int, error) {
	switch mode {
	case ModeNumeric:
		return len(content), appendNumericBytes(content, bits)
	case ModeAlphanumeric:
		return len(content), appendAlphanumericBytes(content, bits)
	case ModeByte:
		return append8BitBytes(content, bits, characterSet)
	case ModeKanji:
		return appendKanjiBytes(content, bits)
	default:
		return 0, errUnsupportedMode
	}
}

func appendNumericBytes(content string, bits *bitutil.BitArray) error {
	length := len(content)
	i := 0
	for i < length {
		num1 := int(content[i] - '0')
		switch {
		case i+2 < length:
			num2 := int(content[i+1] - '0')
			num3 := int(content[i+2] - '0')
			if err := bits.AppendBits(uint32(num1*100+num2*10+num3), 10); err != nil {
				return err
			}
			i += 3
		case i+1 < length:
			num2 := int(content[i+1] - '0')
			if err := bits.AppendBits(uint32(num1*10+num2), 7); err != nil {
				return err
			}
			i += 2
		default:
			if err := bits.AppendBits(uint32(num1), 4); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

func appendAlphanumericBytes(content string, bits *bitutil.BitArray) error {
	length := len(content)
	i := 0
	for i < length {
		code1 := alphanumericCode(int(content[i]))
		if code1 == -1 {
			return fmt.Errorf("qrcode: %q is not a valid alphanumeric-mode character: %w", content[i], errs.BadInput)
		}
		if i+1 < length {
			code2 := alphanumericCode(int(content[i+1]))
			if code2 == -1 {
				return fmt.Errorf("qrcode: %q is not a valid alphanumeric-mode character: %w", content[i+1], errs.BadInput)
			}
			if err := bits.AppendBits(uint32(code1*45+code2), 11); err != nil {
				return err
			}
			i += 2
		} else {
			if err := bits.AppendBits(uint32(code1), 6); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

func append8BitBytes(content string, bits *bitutil.BitArray, characterSet string) (int, error) {
	encoded, err := charset.EncodeString(content, characterSet)
	if err != nil {
		return 0, fmt.Errorf("qrcode: %v: %w", err, errs.BadInput)
	}
	for _, b := range encoded {
		if err := bits.AppendBits(uint32(b), 8); err != nil {
			return 0, err
		}
	}
	return len(encoded), nil
}

// appendKanjiBytes transcodes content to Shift_JIS and packs each 2-byte
// character into 13 bits: the byte pair is reduced to its offset within
// the standard Kanji range, then recombined as high*0xC0 + low.
func appendKanjiBytes(content string, bits *bitutil.BitArray) (int, error) {
	encoded, err := charset.EncodeShiftJIS(content)
	if err != nil {
		return 0, fmt.Errorf("qrcode: %v: %w", err, errs.BadInput)
	}
	if len(encoded)%2 != 0 {
		return 0, fmt.Errorf("qrcode: Shift_JIS content has an odd byte count: %w", errs.BadInput)
	}
	numKanji := len(encoded) / 2
	for i := 0; i < len(encoded); i += 2 {
		c := (int(encoded[i]) << 8) | int(encoded[i+1])
		var subtracted int
		switch {
		case c >= 0x8140 && c <= 0x9FFC:
			subtracted = c - 0x8140
		case c >= 0xE040 && c <= 0xEBBF:
			subtracted = c - 0xC140
		default:
			return 0, fmt.Errorf("qrcode: %#x is outside the Shift_JIS Kanji ranges: %w", c, errs.BadInput)
		}
		encodedValue := (subtracted>>8)*0xC0 + (subtracted & 0xFF)
		if err := bits.AppendBits(uint32(encodedValue), 13); err != nil {
			return 0, err
		}
	}
	return numKanji, nil
}

func interleaveWithECBytes(bits *bitutil.BitArray, numTotalBytes, numDataBytes, numRSBlocks int) (*bitutil.BitArray, error) {
	if bits.SizeInBytes() != numDataBytes {
		return nil, fmt.Errorf("qrcode: data byte count %d does not match expected %d: %w", bits.SizeInBytes(), numDataBytes, errs.InternalInvariant)
	}

	dataBytesOffset := 0
	maxNumDataBytes := 0
	maxNumEcBytes := 0

	type blockPair struct {
		dataBytes []byte
		ecBytes   []byte
	}
	blocks := make([]blockPair, numRSBlocks)

	for i := 0; i < numRSBlocks; i++ {
		numDataBytesInBlock, numEcBytesInBlock := getNumDataBytesAndNumECBytesForBlockID(
			numTotalBytes, numDataBytes, numRSBlocks, i)

		dataBytes := make([]byte, numDataBytesInBlock)
		bits.ToBytes(8*dataBytesOffset, dataBytes, 0, numDataBytesInBlock)
		ecBytes, err := generateECBytes(dataBytes, numEcBytesInBlock)
		if err != nil {
			return nil, err
		}
		blocks[i] = blockPair{dataBytes: dataBytes, ecBytes: ecBytes}

		if numDataBytesInBlock > maxNumDataBytes {
			maxNumDataBytes = numDataBytesInBlock
		}
		if numEcBytesInBlock > maxNumEcBytes {
			maxNumEcBytes = numEcBytesInBlock
		}
		dataBytesOffset += numDataBytesInBlock
	}

	result := bitutil.NewBitArray(0)

	for i := 0; i < maxNumDataBytes; i++ {
		for _, block := range blocks {
			if i < len(block.dataBytes) {
				if err := result.AppendBits(uint32(block.dataBytes[i]), 8); err != nil {
					return nil, err
				}
			}
		}
	}
	for i := 0; i < maxNumEcBytes; i++ {
		for _, block := range blocks {
			if i < len(block.ecBytes) {
				if err := result.AppendBits(uint32(block.ecBytes[i]), 8); err != nil {
					return nil, err
				}
			}
		}
	}

	if result.SizeInBytes() != numTotalBytes {
		return nil, fmt.Errorf("qrcode: interleaved byte count %d does not match expected %d: %w", result.SizeInBytes(), numTotalBytes, errs.InternalInvariant)
	}
	return result, nil
}

func getNumDataBytesAndNumECBytesForBlockID(numTotalBytes, numDataBytes, numRSBlocks, blockID int) (int, int) {
	if blockID >= numRSBlocks {
		return 0, 0
	}
	numRsBlocksInGroup2 := numTotalBytes % numRSBlocks
	numRsBlocksInGroup1 := numRSBlocks - numRsBlocksInGroup2
	numTotalBytesInGroup1 := numTotalBytes / numRSBlocks
	numTotalBytesInGroup2 := numTotalBytesInGroup1 + 1
	numDataBytesInGroup1 := numDataBytes / numRSBlocks
	numDataBytesInGroup2 := numDataBytesInGroup1 + 1
	numEcBytesInGroup1 := numTotalBytesInGroup1 - numDataBytesInGroup1
	numEcBytesInGroup2 := numTotalBytesInGroup2 - numDataBytesInGroup2

	if blockID < numRsBlocksInGroup1 {
		return numDataBytesInGroup1, numEcBytesInGroup1
	}
	return numDataBytesInGroup2, numEcBytesInGroup2
}

func generateECBytes(dataBytes []byte, numEcBytesInBlock int) ([]byte, error) {
	numDataBytes := len(dataBytes)
	toEncode := make([]int, numDataBytes+numEcBytesInBlock)
	for i, bVal := range dataBytes {
		toEncode[i] = int(bVal) & 0xFF
	}
	enc := reedsolomon.NewEncoder(reedsolomon.QRCodeField256)
	if err := enc.Encode(toEncode, numEcBytesInBlock); err != nil {
		return nil, err
	}
	ecBytes := make([]byte, numEcBytesInBlock)
	for i := 0; i < numEcBytesInBlock; i++ {
		ecBytes[i] = byte(toEncode[numDataBytes+i])
	}
	return ecBytes, nil
}

func chooseMaskPattern(bits *bitutil.BitArray, ecLevel ErrorCorrectionLevel, version *Version, matrix *bitutil.ByteMatrix) (int, error) {
	minPenalty := math.MaxInt32
	bestPattern := -1
	for i := 0; i < numMaskPatterns; i++ {
		if err := buildMatrix(bits, ecLevel, version, i, matrix); err != nil {
			return 0, err
		}
		penalty := calculateMaskPenalty(matrix)
		if penalty < minPenalty {
			minPenalty = penalty
			bestPattern = i
		}
	}
	if bestPattern < 0 {
		return 0, fmt.Errorf("qrcode: mask pattern search produced no candidate: %w", errs.InternalInvariant)
	}
	return bestPattern, nil
}

func calculateMaskPenalty(matrix *bitutil.ByteMatrix) int {
	return applyMaskPenaltyRule1(matrix) +
		applyMaskPenaltyRule2(matrix) +
		applyMaskPenaltyRule3(matrix) +
		applyMaskPenaltyRule4(matrix)
}

// applyMaskPenaltyRule1 penalizes runs of 5 or more same-color modules
// along a row or column.
func applyMaskPenaltyRule1(matrix *bitutil.ByteMatrix) int {
	return applyMaskPenaltyRule1Internal(matrix, true) + applyMaskPenaltyRule1Internal(matrix, false)
}

func applyMaskPenaltyRule1Internal(matrix *bitutil.ByteMatrix, isHorizontal bool) int {
	penalty := 0
	iLimit := matrix.Height
	jLimit := matrix.Width
	if !isHorizontal {
		iLimit = matrix.Width
		jLimit = matrix.Height
	}
	for i := 0; i < iLimit; i++ {
		numSameBitCells := 0
		prevBit := byte(255)
		for j := 0; j < jLimit; j++ {
			var bit byte
			if isHorizontal {
				bit = matrix.Get(j, i)
			} else {
				bit = matrix.Get(i, j)
			}
			if bit == prevBit {
				numSameBitCells++
			} else {
				if numSameBitCells >= 5 {
					penalty += 3 + (numSameBitCells - 5)
				}
				numSameBitCells = 1
				prevBit = bit
			}
		}
		if numSameBitCells >= 5 {
			penalty += 3 + (numSameBitCells - 5)
		}
	}
	return penalty
}

// applyMaskPenaltyRule2 penalizes 2x2 blocks of uniform color.
func applyMaskPenaltyRule2(matrix *bitutil.ByteMatrix) int {
	penalty := 0
	for y := 0; y < matrix.Height-1; y++ {
		for x := 0; x < matrix.Width-1; x++ {
			value := matrix.Get(x, y)
			if value == matrix.Get(x+1, y) && value == matrix.Get(x, y+1) && value == matrix.Get(x+1, y+1) {
				penalty += 3
			}
		}
	}
	return penalty
}

// applyMaskPenaltyRule3 penalizes the 1:1:3:1:1 finder-like run that can be
// mistaken for a finder pattern by a decoder.
func applyMaskPenaltyRule3(matrix *bitutil.ByteMatrix) int {
	penalty := 0
	for y := 0; y < matrix.Height; y++ {
		for x := 0; x < matrix.Width; x++ {
			if x+6 < matrix.Width {
				if matrix.Get(x, y) == 1 && matrix.Get(x+1, y) == 0 &&
					matrix.Get(x+2, y) == 1 && matrix.Get(x+3, y) == 1 &&
					matrix.Get(x+4, y) == 1 && matrix.Get(x+5, y) == 0 &&
					matrix.Get(x+6, y) == 1 {
					leadingWhite := x+10 < matrix.Width && matrix.Get(x+7, y) == 0 && matrix.Get(x+8, y) == 0 &&
						matrix.Get(x+9, y) == 0 && matrix.Get(x+10, y) == 0
					trailingWhite := x >= 4 && matrix.Get(x-1, y) == 0 && matrix.Get(x-2, y) == 0 &&
						matrix.Get(x-3, y) == 0 && matrix.Get(x-4, y) == 0
					if leadingWhite || trailingWhite {
						penalty += 40
					}
				}
			}
			if y+6 < matrix.Height {
				if matrix.Get(x, y) == 1 && matrix.Get(x, y+1) == 0 &&
					matrix.Get(x, y+2) == 1 && matrix.Get(x, y+3) == 1 &&
					matrix.Get(x, y+4) == 1 && matrix.Get(x, y+5) == 0 &&
					matrix.Get(x, y+6) == 1 {
					leadingWhite := y+10 < matrix.Height && matrix.Get(x, y+7) == 0 && matrix.Get(x, y+8) == 0 &&
						matrix.Get(x, y+9) == 0 && matrix.Get(x, y+10) == 0
					trailingWhite := y >= 4 && matrix.Get(x, y-1) == 0 && matrix.Get(x, y-2) == 0 &&
						matrix.Get(x, y-3) == 0 && matrix.Get(x, y-4) == 0
					if leadingWhite || trailingWhite {
						penalty += 40
					}
				}
			}
		}
	}
	return penalty
}

// applyMaskPenaltyRule4 penalizes deviation from a 50% dark-module ratio.
func applyMaskPenaltyRule4(matrix *bitutil.ByteMatrix) int {
	numDarkCells := 0
	total := matrix.Height * matrix.Width
	for y := 0; y < matrix.Height; y++ {
		for x := 0; x < matrix.Width; x++ {
			if matrix.Get(x, y) == 1 {
				numDarkCells++
			}
		}
	}
	fivePercentVariances := abs(numDarkCells*2-total) * 10 / total
	return fivePercentVariances * 10
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// buildMatrix lays out one complete candidate symbol: function patterns,
// type and version info, then the interleaved data stream masked with
// maskPattern.
func buildMatrix(dataBits *bitutil.BitArray, ecLevel ErrorCorrectionLevel,
	version *Version, maskPattern int, matrix *bitutil.ByteMatrix) error {

	matrix.Clear(bitutil.ByteMatrixEmpty)

	embedBasicPatterns(version, matrix)
	embedTypeInfo(ecLevel, maskPattern, matrix)
	maybeEmbedVersionInfo(version, matrix)
	return embedDataBits(dataBits, maskPattern, matrix)
}

// positionDetectionPattern is the 7x7 finder pattern.
var positionDetectionPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// positionAdjustmentPattern is the 5x5 alignment pattern.
var positionAdjustmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

func embedBasicPatterns(version *Version, matrix *bitutil.ByteMatrix) {
	embedPositionDetectionPattern(0, 0, matrix)
	embedPositionDetectionPattern(matrix.Width-7, 0, matrix)
	embedPositionDetectionPattern(0, matrix.Height-7, matrix)

	embedHorizontalSeparator(0, 7, matrix)
	embedHorizontalSeparator(matrix.Width-8, 7, matrix)
	embedHorizontalSeparator(0, matrix.Height-8, matrix)

	embedVerticalSeparator(7, 0, matrix)
	embedVerticalSeparator(matrix.Width-8, 0, matrix)
	embedVerticalSeparator(7, matrix.Height-7, matrix)

	if version.Number >= 2 {
		embedPositionAdjustmentPatterns(version, matrix)
	}

	embedTimingPatterns(matrix)

	matrix.Set(8, matrix.Height-8, 1)
}

func embedPositionDetectionPattern(xStart, yStart int, matrix *bitutil.ByteMatrix) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			matrix.Set(xStart+x, yStart+y, positionDetectionPattern[y][x])
		}
	}
}

func embedHorizontalSeparator(xStart, yStart int, matrix *bitutil.ByteMatrix) {
	for x := 0; x < 8; x++ {
		if xStart+x < matrix.Width {
			matrix.Set(xStart+x, yStart, 0)
		}
	}
}

func embedVerticalSeparator(xStart, yStart int, matrix *bitutil.ByteMatrix) {
	for y := 0; y < 7; y++ {
		if yStart+y < matrix.Height {
			matrix.Set(xStart, yStart+y, 0)
		}
	}
}

func embedPositionAdjustmentPatterns(version *Version, matrix *bitutil.ByteMatrix) {
	centers := version.AlignmentPatternCenters
	for _, cy := range centers {
		for _, cx := range centers {
			if matrix.Get(cx, cy) != bitutil.ByteMatrixEmpty {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					matrix.Set(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(matrix *bitutil.ByteMatrix) {
	for i := 8; i < matrix.Width-8; i++ {
		bit := byte((i + 1) % 2)
		if matrix.Get(i, 6) == bitutil.ByteMatrixEmpty {
			matrix.Set(i, 6, bit)
		}
		if matrix.Get(6, i) == bitutil.ByteMatrixEmpty {
			matrix.Set(6, i, bit)
		}
	}
}

const (
	typeInfoPoly        = 0x537
	typeInfoMaskPattern = 0x5412
	versionInfoPoly     = 0x1f25
)

func embedTypeInfo(ecLevel ErrorCorrectionLevel, maskPattern int, matrix *bitutil.ByteMatrix) {
	typeInfo := (ecLevel.Bits() << 3) | maskPattern
	bchCode := calculateBCHCode(typeInfo, typeInfoPoly)
	typeInfoBits := (typeInfo << 10) | bchCode
	typeInfoBits ^= typeInfoMaskPattern

	typeInfoCoordinates := [][2]int{
		{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
		{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
	}

	for i := 0; i < 15; i++ {
		bit := byte((typeInfoBits >> uint(i)) & 1)
		coord := typeInfoCoordinates[i]
		matrix.Set(coord[0], coord[1], bit)

		if i < 8 {
			matrix.Set(matrix.Width-1-i, 8, bit)
		} else {
			matrix.Set(8, matrix.Height-7+(i-8), bit)
		}
	}
}

func maybeEmbedVersionInfo(version *Version, matrix *bitutil.ByteMatrix) {
	if version.Number < 7 {
		return
	}
	versionInfoBits := calculateBCHCode(version.Number, versionInfoPoly)
	versionInfoBits = (version.Number << 12) | versionInfoBits

	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := byte((versionInfoBits >> uint(bitIndex)) & 1)
			bitIndex++
			matrix.Set(i, matrix.Height-11+j, bit)
			matrix.Set(matrix.Width-11+j, i, bit)
		}
	}
}

func embedDataBits(dataBits *bitutil.BitArray, maskPattern int, matrix *bitutil.ByteMatrix) error {
	bitIndex := 0
	dimension := matrix.Height

	for j := dimension - 1; j > 0; j -= 2 {
		if j == 6 {
			j--
		}
		for count := 0; count < dimension; count++ {
			upward := (((dimension - 1 - j) / 2) & 1) == 0
			i := count
			if upward {
				i = dimension - 1 - count
			}
			for col := 0; col < 2; col++ {
				x := j - col
				if matrix.Get(x, i) == bitutil.ByteMatrixEmpty {
					var bit bool
					if bitIndex < dataBits.Size() {
						bit = dataBits.Get(bitIndex)
						bitIndex++
					}
					if dataMasks[maskPattern](i, x) {
						bit = !bit
					}
					if bit {
						matrix.Set(x, i, 1)
					} else {
						matrix.Set(x, i, 0)
					}
				}
			}
		}
	}

	if bitIndex != dataBits.Size() {
		return fmt.Errorf("qrcode: not all data bits were consumed (%d of %d): %w", bitIndex, dataBits.Size(), errs.InternalInvariant)
	}
	return nil
}

func calculateBCHCode(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}

// RenderResult scales code's module matrix into a BitMatrix at least width
// by height pixels, with quietZone blank modules of margin on every side.
func RenderResult(code *Code, width, height, quietZone int) (*bitutil.BitMatrix, error) {
	input := code.Matrix
	inputWidth := input.Width
	inputHeight := input.Height
	qrWidth := inputWidth + quietZone*2
	qrHeight := inputHeight + quietZone*2
	outputWidth := width
	if outputWidth < qrWidth {
		outputWidth = qrWidth
	}
	outputHeight := height
	if outputHeight < qrHeight {
		outputHeight = qrHeight
	}

	multiple := outputWidth / qrWidth
	if h := outputHeight / qrHeight; h < multiple {
		multiple = h
	}

	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	output, err := bitutil.NewBitMatrixWithSize(outputWidth, outputHeight)
	if err != nil {
		return nil, err
	}

	for inputY := 0; inputY < inputHeight; inputY++ {
		outputY := topPadding + inputY*multiple
		for inputX := 0; inputX < inputWidth; inputX++ {
			if input.Get(inputX, inputY) == 1 {
				outputX := leftPadding + inputX*multiple
				if err := output.SetRegion(outputX, outputY, multiple, multiple); err != nil {
					return nil, err
				}
			}
		}
	}

	return output, nil
}

// ToBitMatrix converts code's module matrix to an unscaled BitMatrix, one
// bit per module.
func (code *Code) ToBitMatrix() (*bitutil.BitMatrix, error) {
	bm, err := bitutil.NewBitMatrixWithSize(code.Matrix.Width, code.Matrix.Height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < code.Matrix.Height; y++ {
		for x := 0; x < code.Matrix.Width; x++ {
			if code.Matrix.Get(x, y) == 1 {
				bm.Set(x, y)
			}
		}
	}
	return bm, nil
}

// String returns a visual "##"/"  " rendering of the module matrix.
func (code *Code) String() string {
	var sb strings.Builder
	for y := 0; y < code.Matrix.Height; y++ {
		for x := 0; x < code.Matrix.Width; x++ {
			if code.Matrix.Get(x, y) == 1 {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
