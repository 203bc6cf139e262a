package simon

// SequenceGenerator produces the per-round constant bit of the configured
// z sequence. Direction selects the LFSR feedback configuration and seed:
// encryption (and the decrypt key warm-up) walks the sequence forward from
// bit 0, decryption walks it backward from bit T-m-1, which is where the
// inverse key schedule starts consuming constants.
//
// For classes 0 and 1 the output is the raw LFSR bit; classes 2 to 4 XOR in
// a period-2 toggle seeded per direction and flipped on every advance.
type SequenceGenerator struct {
	cfg    *Config
	lfsr   ReconfigurableLFSR
	toggle uint8
	config int // selected feedback configuration for this phase
}

func newSequenceGenerator(cfg *Config) SequenceGenerator {
	return SequenceGenerator{
		cfg:  cfg,
		lfsr: NewReconfigurableLFSR(cfg.reverse, cfg.forward),
	}
}

// Reset reseeds the LFSR and toggle for the given direction. It must run
// exactly once on phase entry and never in the same step as Advance.
func (g *SequenceGenerator) Reset(dir Direction) {
	if dir == Decrypt {
		g.config = lfsrReverse
		g.lfsr.LoadSeed(g.cfg.revSeed)
		g.toggle = g.cfg.revToggle
		return
	}
	g.config = lfsrForward
	g.lfsr.LoadSeed(g.cfg.fwdSeed)
	g.toggle = g.cfg.fwdToggle
}

// Advance returns the current constant bit and steps the generator.
func (g *SequenceGenerator) Advance() uint64 {
	bit := g.lfsr.Advance(g.config)
	if g.cfg.toggled {
		bit ^= g.toggle
	}
	g.toggle ^= 1
	return uint64(bit)
}
