package circuit

import (
	"fmt"

	"github.com/lightpath-sim/lightpath/sparam"
)

// block is one partially-reduced subnetwork during the fold: its S-matrix
// and the ports backing each matrix index, in matrix order. The ports slice
// is the explicit pre-reduction-identity → post-reduction-index mapping the
// cascade formulas require.
type block struct {
	s     *sparam.Matrix
	ports []*Port
}

// portIndex finds the matrix index of p within b, or -1.
func (b *block) portIndex(p *Port) int {
	for i, q := range b.ports {
		if q == p {
			return i
		}
	}
	return -1
}

// without returns b.ports with the entries at i and, when j >= 0, j removed,
// preserving relative order — the same renumbering the reduction applies to
// the matrix.
func (b *block) without(i, j int) []*Port {
	out := make([]*Port, 0, len(b.ports))
	for k, p := range b.ports {
		if k != i && k != j {
			out = append(out, p)
		}
	}
	return out
}

// evalBlocks evaluates every optical component's S-matrix over the shared
// sweep and wraps it with its port mapping. A component may return a
// singleton slice (fixed response broadcast across the sweep) or one slice
// per wavelength; anything else is a shape error.
func (c *Circuit) evalBlocks(wl []float64) ([]*block, error) {
	var blocks []*block
	for _, dev := range c.Components() {
		if len(dev.oports) == 0 {
			continue
		}
		s, err := dev.sfn(wl)
		if err != nil {
			return nil, fmt.Errorf("circuit: device %q: %w", dev.name, err)
		}
		if s.Ports() != len(dev.oports) {
			return nil, fmt.Errorf("circuit: device %q returned %d-port matrix for %d ports: %w",
				dev.name, s.Ports(), len(dev.oports), sparam.ErrShapeMismatch)
		}
		if s.Freqs() != len(wl) && s.Freqs() != 1 {
			return nil, fmt.Errorf("circuit: device %q returned %d slices for %d wavelengths: %w",
				dev.name, s.Freqs(), len(wl), sparam.ErrShapeMismatch)
		}
		blocks = append(blocks, &block{s: s, ports: dev.OPorts()})
	}
	return blocks, nil
}

// SParams reduces the whole circuit to one S-matrix over the wavelength
// sweep. Every optical node is folded in node-id order: a node whose two
// ports live in different blocks cascades them with ConnectS; a node whose
// ports live in the same block closes a feedback path with InnerconnectS.
// Disjoint subnetworks left at the end are composed block-diagonally so the
// result always covers every external port.
//
// Returns the reduced matrix and the external ports backing its indices, in
// matrix order.
func (c *Circuit) SParams(wl []float64) (*sparam.Matrix, []*Port, error) {
	if len(wl) == 0 {
		return nil, nil, ErrEmptySweep
	}
	blocks, err := c.evalBlocks(wl)
	if err != nil {
		return nil, nil, err
	}
	if len(blocks) == 0 {
		return nil, nil, ErrEmptyCircuit
	}

	for _, id := range sortedIDs(c.onodes) {
		pair := c.onodes[id]
		bi, i := -1, -1
		bj, j := -1, -1
		for n, b := range blocks {
			if bi < 0 {
				if idx := b.portIndex(pair[0]); idx >= 0 {
					bi, i = n, idx
				}
			}
			if bj < 0 {
				if idx := b.portIndex(pair[1]); idx >= 0 {
					bj, j = n, idx
				}
			}
		}
		if bi < 0 || bj < 0 {
			return nil, nil, fmt.Errorf("circuit: node %d references unknown port: %w", id, ErrForeignPort)
		}

		if bi == bj {
			b := blocks[bi]
			s, err := sparam.InnerconnectS(b.s, i, j)
			if err != nil {
				return nil, nil, fmt.Errorf("circuit: node %d: %w", id, err)
			}
			blocks[bi] = &block{s: s, ports: b.without(i, j)}
			continue
		}

		a, b := blocks[bi], blocks[bj]
		s, err := sparam.ConnectS(a.s, i, b.s, j)
		if err != nil {
			return nil, nil, fmt.Errorf("circuit: node %d: %w", id, err)
		}
		merged := &block{
			s:     s,
			ports: append(a.without(i, -1), b.without(j, -1)...),
		}
		lo, hi := bi, bj
		if hi < lo {
			lo, hi = hi, lo
		}
		blocks[lo] = merged
		blocks = append(blocks[:hi], blocks[hi+1:]...)
	}

	// Disjoint remainder: compose without reduction, skipping fully-closed
	// (0-port) subnetworks whose response is already folded away.
	final := blocks[0]
	for _, b := range blocks[1:] {
		if b.s.Ports() == 0 {
			continue
		}
		if final.s.Ports() == 0 {
			final = b
			continue
		}
		s, err := sparam.BlockDiag(final.s, b.s)
		if err != nil {
			return nil, nil, err
		}
		final = &block{s: s, ports: append(final.ports, b.ports...)}
	}
	return final.s, final.ports, nil
}
