package simon

import "fmt"

// ConfigurationError reports an unusable (wordWidth, keyWords) pair at
// construction time. No engine instance exists after this is returned.
type ConfigurationError struct {
	WordWidth int
	KeyWords  int
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("simon: %d-bit words with %d key words: %s", e.WordWidth, e.KeyWords, e.Reason)
}

// Config is the immutable per-instance cipher configuration. All constants
// are fixed at Lookup time; nothing here changes per request.
type Config struct {
	WordWidth int // n: 16, 24, 32, 48 or 64 bits per word
	KeyWords  int // m: 2, 3 or 4 words of key
	Rounds    int // T
	ZClass    int // which of the five published constant sequences, 0..4

	// Verified is false for the one published configuration whose seed
	// constants the original source marks as suspect (Simon48/96).
	Verified bool

	mask      uint64 // n low bits set
	constBase uint64 // 2^n - 4, XORed with the sequence bit each step

	forward FeedbackMatrix // LFSR matrix stepping the sequence in order
	reverse FeedbackMatrix // inverse matrix, walks the sequence backward

	fwdSeed   uint8 // LFSR state emitting bit 0 of the sequence
	revSeed   uint8 // LFSR state emitting bit T-m-1, where decryption starts
	fwdToggle uint8
	revToggle uint8
	toggled   bool // classes 2..4 XOR a period-2 toggle into the output
}

// The five z sequences come from three period-31 generator sequences
// (u, v, w in the Simon paper). Matrices are stored column-wise; see
// FeedbackMatrix. Reverse matrices are the GF(2) inverses.
var (
	matU    = FeedbackMatrix{0b11101, 1, 2, 4, 8}
	matUInv = FeedbackMatrix{2, 4, 8, 16, 0b11011}
	matV    = FeedbackMatrix{0b11110, 1, 2, 4, 8}
	matVInv = FeedbackMatrix{2, 4, 8, 16, 0b11101}
	matW    = FeedbackMatrix{0b10100, 1, 2, 4, 8}
	matWInv = FeedbackMatrix{2, 4, 8, 16, 0b01001}
)

// classParams carries what depends only on the z class.
type classParams struct {
	forward FeedbackMatrix
	reverse FeedbackMatrix
	fwdSeed uint8
	toggled bool
}

var classTable = [5]classParams{
	{matU, matUInv, 0b11111, false}, // z0 = u
	{matV, matVInv, 0b10001, false}, // z1 = v
	{matU, matUInv, 0b11111, true},  // z2 = u ^ t
	{matV, matVInv, 0b10001, true},  // z3 = v ^ t
	{matW, matWInv, 0b10000, true},  // z4 = w ^ t
}

// configTable enumerates every published SIMON configuration for word
// widths up to 64 bits. revSeed is the forward LFSR state after T-m-1
// advances; revToggle is (T-m-1) mod 2. Both were derived once from the
// published sequences and are pinned by tests against the full z strings.
var configTable = []Config{
	{WordWidth: 16, KeyWords: 4, Rounds: 32, ZClass: 0, Verified: true, revSeed: 0b01101, revToggle: 1},
	{WordWidth: 24, KeyWords: 3, Rounds: 36, ZClass: 0, Verified: true, revSeed: 0b11110, revToggle: 0},
	{WordWidth: 24, KeyWords: 4, Rounds: 36, ZClass: 1, Verified: false, revSeed: 0b10001, revToggle: 1},
	{WordWidth: 32, KeyWords: 3, Rounds: 42, ZClass: 2, Verified: true, revSeed: 0b00010, revToggle: 0},
	{WordWidth: 32, KeyWords: 4, Rounds: 44, ZClass: 3, Verified: true, revSeed: 0b11111, revToggle: 1},
	{WordWidth: 48, KeyWords: 2, Rounds: 52, ZClass: 2, Verified: true, revSeed: 0b10000, revToggle: 1},
	{WordWidth: 48, KeyWords: 3, Rounds: 54, ZClass: 3, Verified: true, revSeed: 0b10000, revToggle: 0},
	{WordWidth: 64, KeyWords: 2, Rounds: 68, ZClass: 2, Verified: true, revSeed: 0b11010, revToggle: 1},
	{WordWidth: 64, KeyWords: 3, Rounds: 69, ZClass: 3, Verified: true, revSeed: 0b01110, revToggle: 1},
	{WordWidth: 64, KeyWords: 4, Rounds: 72, ZClass: 4, Verified: true, revSeed: 0b10010, revToggle: 1},
}

func init() {
	for i := range configTable {
		c := &configTable[i]
		cp := classTable[c.ZClass]
		c.forward, c.reverse = cp.forward, cp.reverse
		c.fwdSeed, c.toggled = cp.fwdSeed, cp.toggled
		c.fwdToggle = 0
		c.mask = wordMask(c.WordWidth)
		c.constBase = c.mask ^ 3
	}
}

// Lookup resolves a (wordWidth, keyWords) pair to its configuration.
// Unknown pairs and the unverified Simon48/96 entry both fail; the table is
// never consulted again after construction.
func Lookup(wordWidth, keyWords int) (*Config, error) {
	for i := range configTable {
		c := &configTable[i]
		if c.WordWidth != wordWidth || c.KeyWords != keyWords {
			continue
		}
		if !c.Verified {
			return nil, &ConfigurationError{wordWidth, keyWords, "seed constants unverified, configuration disabled"}
		}
		return c, nil
	}
	return nil, &ConfigurationError{wordWidth, keyWords, "no such SIMON configuration"}
}

// ConfigInfo is the exportable summary of one table entry, used by the
// catalogue endpoint and the service layer.
type ConfigInfo struct {
	WordWidth int    `json:"word_width"`
	KeyWords  int    `json:"key_words"`
	BlockBits int    `json:"block_bits"`
	KeyBits   int    `json:"key_bits"`
	Rounds    int    `json:"rounds"`
	ZClass    int    `json:"z_class"`
	Name      string `json:"name"`
	Verified  bool   `json:"verified"`
}

// Configurations lists every table entry, including the unverified one so
// callers can surface it as experimental.
func Configurations() []ConfigInfo {
	out := make([]ConfigInfo, 0, len(configTable))
	for i := range configTable {
		c := &configTable[i]
		out = append(out, ConfigInfo{
			WordWidth: c.WordWidth,
			KeyWords:  c.KeyWords,
			BlockBits: 2 * c.WordWidth,
			KeyBits:   c.KeyWords * c.WordWidth,
			Rounds:    c.Rounds,
			ZClass:    c.ZClass,
			Name:      fmt.Sprintf("SIMON%d/%d", 2*c.WordWidth, c.KeyWords*c.WordWidth),
			Verified:  c.Verified,
		})
	}
	return out
}

// Mask exposes the word mask for callers packing words.
func (c *Config) Mask() uint64 { return c.mask }

func wordMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}
