package format

import "github.com/robert-malhotra/go-ibw/internal/record"

// Wave name limits (without the trailing null) and unit string width.
const (
	MaxWaveName2 = 18
	MaxWaveName5 = 31
	MaxUnitChars = 3
)

// MaxDims is the dimension limit of a wave.
const MaxDims = 4

// BinHeaderCommon covers the leading version field shared by every
// bin header revision; it is decoded first to resolve the byte order.
var BinHeaderCommon = record.New("BinHeaderCommon", []record.Field{
	{Kind: record.Int16, Name: "version"},
})

var BinHeader1 = record.New("BinHeader1", []record.Field{
	{Kind: record.Int16, Name: "version"},
	// wfmSize covers the wave header plus the wave data.
	{Kind: record.Int32, Name: "wfmSize"},
	{Kind: record.Int16, Name: "checksum"},
})

var BinHeader2 = record.New("BinHeader2", []record.Field{
	{Kind: record.Int16, Name: "version"},
	{Kind: record.Int32, Name: "wfmSize"},
	{Kind: record.Int32, Name: "noteSize"},
	{Kind: record.Int32, Name: "pictSize", Default: 0},
	{Kind: record.Int16, Name: "checksum"},
})

var BinHeader3 = record.New("BinHeader3", []record.Field{
	{Kind: record.Int16, Name: "version"},
	// 2-byte wfmSize, unlike every other revision.
	{Kind: record.Int16, Name: "wfmSize"},
	{Kind: record.Int32, Name: "noteSize"},
	{Kind: record.Int32, Name: "formulaSize"},
	{Kind: record.Int32, Name: "pictSize", Default: 0},
	{Kind: record.Int16, Name: "checksum"},
})

var BinHeader5 = record.New("BinHeader5", []record.Field{
	{Kind: record.Int16, Name: "version"},
	{Kind: record.Int16, Name: "checksum"},
	{Kind: record.Int32, Name: "wfmSize"},
	{Kind: record.Int32, Name: "formulaSize"},
	{Kind: record.Int32, Name: "noteSize"},
	{Kind: record.Int32, Name: "dataEUnitsSize"},
	{Kind: record.Int32, Name: "dimEUnitsSize", Shape: []int{MaxDims}},
	{Kind: record.Int32, Name: "dimLabelsSize", Shape: []int{MaxDims}},
	{Kind: record.Int32, Name: "sIndicesSize"},
	{Kind: record.Int32, Name: "optionsSize1", Default: 0},
	{Kind: record.Int32, Name: "optionsSize2", Default: 0},
})

// WaveHeader2 is the wave header of version 1, 2 and 3 files. The final
// wData field is a placeholder that overlaps the first 16 payload bytes.
var WaveHeader2 = record.New("WaveHeader2", []record.Field{
	{Kind: record.Int16, Name: "type"},
	{Kind: record.Uint32, Name: "next", Default: 0},
	{Kind: record.Char, Name: "bname", Shape: []int{MaxWaveName2 + 2}},
	{Kind: record.Int16, Name: "whVersion", Default: 0},
	{Kind: record.Int16, Name: "srcFldr", Default: 0},
	{Kind: record.Uint32, Name: "fileName", Default: 0},
	{Kind: record.Char, Name: "dataUnits", Shape: []int{MaxUnitChars + 1}, Default: 0},
	{Kind: record.Char, Name: "xUnits", Shape: []int{MaxUnitChars + 1}, Default: 0},
	{Kind: record.Int32, Name: "npnts"},
	{Kind: record.Int16, Name: "aModified", Default: 0},
	// X value for point p is hsA*p + hsB.
	{Kind: record.Float64, Name: "hsA"},
	{Kind: record.Float64, Name: "hsB"},
	{Kind: record.Int16, Name: "wModified", Default: 0},
	{Kind: record.Int16, Name: "swModified", Default: 0},
	{Kind: record.Int16, Name: "fsValid"},
	{Kind: record.Float64, Name: "topFullScale"},
	{Kind: record.Float64, Name: "botFullScale"},
	{Kind: record.Char, Name: "useBits", Default: 0},
	{Kind: record.Char, Name: "kindBits", Default: 0},
	{Kind: record.Uint32, Name: "formula", Default: 0},
	{Kind: record.Int32, Name: "depID", Default: 0},
	{Kind: record.Uint32, Name: "creationDate"},
	{Kind: record.Char, Name: "wUnused", Shape: []int{2}, Default: 0},
	{Kind: record.Uint32, Name: "modDate"},
	{Kind: record.Uint32, Name: "waveNoteH"},
	{Kind: record.Float32, Name: "wData", Shape: []int{4}},
}).WithTailGuard("npnts")

// WaveHeader5 is the wave header of version 5 files. wData overlaps the
// first 4 payload bytes and may be absent entirely for empty waves.
var WaveHeader5 = record.New("WaveHeader5", []record.Field{
	{Kind: record.Uint32, Name: "next"},
	{Kind: record.Uint32, Name: "creationDate"},
	{Kind: record.Uint32, Name: "modDate"},
	{Kind: record.Int32, Name: "npnts"},
	{Kind: record.Int16, Name: "type"},
	{Kind: record.Int16, Name: "dLock", Default: 0},
	{Kind: record.Char, Name: "whpad1", Shape: []int{6}, Default: 0},
	{Kind: record.Int16, Name: "whVersion", Default: 1},
	{Kind: record.Char, Name: "bname", Shape: []int{MaxWaveName5 + 1}},
	{Kind: record.Int32, Name: "whpad2", Default: 0},
	{Kind: record.Uint32, Name: "dFolder", Default: 0},
	// nDim[0] is rows, nDim[1] columns; a zero entry ends the list.
	{Kind: record.Int32, Name: "nDim", Shape: []int{MaxDims}},
	// Index value for element e of dimension d is sfA[d]*e + sfB[d].
	{Kind: record.Float64, Name: "sfA", Shape: []int{MaxDims}},
	{Kind: record.Float64, Name: "sfB", Shape: []int{MaxDims}},
	{Kind: record.Char, Name: "dataUnits", Shape: []int{MaxUnitChars + 1}, Default: 0},
	{Kind: record.Char, Name: "dimUnits", Shape: []int{MaxDims, MaxUnitChars + 1}, Default: 0},
	{Kind: record.Int16, Name: "fsValid"},
	{Kind: record.Int16, Name: "whpad3", Default: 0},
	{Kind: record.Float64, Name: "topFullScale"},
	{Kind: record.Float64, Name: "botFullScale"},
	{Kind: record.Uint32, Name: "dataEUnits", Default: 0},
	{Kind: record.Uint32, Name: "dimEUnits", Shape: []int{MaxDims}, Default: 0},
	{Kind: record.Uint32, Name: "dimLabels", Shape: []int{MaxDims}, Default: 0},
	{Kind: record.Uint32, Name: "waveNoteH", Default: 0},
	{Kind: record.Int32, Name: "whUnused", Shape: []int{16}, Default: 0},
	{Kind: record.Int16, Name: "aModified", Default: 0},
	{Kind: record.Int16, Name: "wModified", Default: 0},
	{Kind: record.Int16, Name: "swModified", Default: 0},
	{Kind: record.Char, Name: "useBits", Default: 0},
	{Kind: record.Char, Name: "kindBits", Default: 0},
	{Kind: record.Uint32, Name: "formula", Default: 0},
	{Kind: record.Int32, Name: "depID", Default: 0},
	{Kind: record.Int16, Name: "whpad4", Default: 0},
	{Kind: record.Int16, Name: "srcFldr", Default: 0},
	{Kind: record.Uint32, Name: "fileName", Default: 0},
	{Kind: record.Uint32, Name: "sIndices", Default: 0},
	{Kind: record.Float32, Name: "wData", Shape: []int{1}},
}).WithTailGuard("npnts")
