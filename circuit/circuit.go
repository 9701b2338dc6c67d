package circuit

import (
	"fmt"
	"sort"
)

// Circuit tracks connections between device ports in two node arenas, one
// per domain. The zero value is not usable; construct with New.
type Circuit struct {
	name string

	onodes map[int][2]*Port // optical joints, always exactly two members
	enodes map[int][]*Port  // electrical nets, membership in insertion order

	nextONode int
	nextENode int
}

// New creates an empty named circuit. Node id counters start at 1 so that a
// port's zero node id always means "unconnected".
func New(name string) *Circuit {
	return &Circuit{
		name:      name,
		onodes:    make(map[int][2]*Port),
		enodes:    make(map[int][]*Port),
		nextONode: 1,
		nextENode: 1,
	}
}

// Name returns the circuit's name.
func (c *Circuit) Name() string { return c.name }

// resolveFirst turns the first Connect endpoint into a concrete port.
// Bare devices infer their next unconnected port, optical preferred over
// electrical — the single inference policy of this package.
func resolveFirst(ep any) (*Port, error) {
	switch v := ep.(type) {
	case *Port:
		return v, nil
	case *Device:
		if p := v.NextUnconnectedO(); p != nil {
			return p, nil
		}
		if p := v.NextUnconnectedE(); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("circuit: device %q: %w", v.name, ErrNoFreePort)
	default:
		return nil, fmt.Errorf("circuit: got %T: %w", ep, ErrInvalidEndpoint)
	}
}

// resolveSecond turns the second Connect endpoint into a concrete port of
// the same domain as first.
func resolveSecond(ep any, domain Domain) (*Port, error) {
	switch v := ep.(type) {
	case *Port:
		if v.domain != domain {
			return nil, fmt.Errorf("circuit: %s endpoint joined to %s port %s: %w",
				domain, v.domain, v, ErrDomainMismatch)
		}
		return v, nil
	case *Device:
		var p *Port
		if domain == Optical {
			p = v.NextUnconnectedO()
		} else {
			p = v.NextUnconnectedE()
		}
		if p == nil {
			return nil, fmt.Errorf("circuit: device %q has no free %s port: %w", v.name, domain, ErrNoFreePort)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("circuit: got %T: %w", ep, ErrInvalidEndpoint)
	}
}

// Connect joins two endpoints. Each endpoint is a *Port or a *Device; for a
// device the next unconnected port is inferred (optical first). The two
// resolved ports must share a domain.
//
// Optical ports allocate a fresh two-member node; an optical port can host
// only one connection. Electrical ports join or merge nets: if either port
// already belongs to a net, both end up in that net, and two distinct nets
// collapse into the earlier one with every member updated.
//
// Connect is atomic: every failure leaves the node tables untouched.
func (c *Circuit) Connect(a, b any) error {
	p1, err := resolveFirst(a)
	if err != nil {
		return err
	}
	p2, err := resolveSecond(b, p1.domain)
	if err != nil {
		return err
	}
	if p1 == p2 {
		return fmt.Errorf("circuit: %s: %w", p1, ErrSelfConnection)
	}
	if p1.domain == Optical {
		return c.connectOptical(p1, p2)
	}
	return c.connectElectrical(p1, p2)
}

func (c *Circuit) connectOptical(p1, p2 *Port) error {
	if p1.Connected() {
		return fmt.Errorf("circuit: %s: %w", p1, ErrPortBusy)
	}
	if p2.Connected() {
		return fmt.Errorf("circuit: %s: %w", p2, ErrPortBusy)
	}
	id := c.nextONode
	c.nextONode++
	c.onodes[id] = [2]*Port{p1, p2}
	p1.node = id
	p2.node = id
	return nil
}

func (c *Circuit) connectElectrical(p1, p2 *Port) error {
	n1, n2 := p1.node, p2.node
	switch {
	case n1 == 0 && n2 == 0:
		id := c.nextENode
		c.nextENode++
		c.enodes[id] = []*Port{p1, p2}
		p1.node = id
		p2.node = id
	case n1 != 0 && n2 == 0:
		c.enodes[n1] = append(c.enodes[n1], p2)
		p2.node = n1
	case n1 == 0 && n2 != 0:
		c.enodes[n2] = append(c.enodes[n2], p1)
		p1.node = n2
	case n1 == n2:
		// Already on the same net.
	default:
		// Two existing nets overlap through this connection: collapse the
		// later one into the earlier, retiring the later id for good.
		keep, drop := n1, n2
		if drop < keep {
			keep, drop = drop, keep
		}
		for _, p := range c.enodes[drop] {
			p.node = keep
		}
		c.enodes[keep] = append(c.enodes[keep], c.enodes[drop]...)
		delete(c.enodes, drop)
	}
	return nil
}

// Connections returns the ports directly joined to p through its node, in
// node insertion order, excluding p itself. An unconnected port yields nil.
func (c *Circuit) Connections(p *Port) []*Port {
	if p.node == 0 {
		return nil
	}
	if p.domain == Optical {
		pair, ok := c.onodes[p.node]
		if !ok {
			return nil
		}
		if pair[0] == p {
			return []*Port{pair[1]}
		}
		return []*Port{pair[0]}
	}
	members, ok := c.enodes[p.node]
	if !ok {
		return nil
	}
	out := make([]*Port, 0, len(members)-1)
	for _, m := range members {
		if m != p {
			out = append(out, m)
		}
	}
	return out
}

// Disconnect removes the node containing p, clearing membership (and with
// it the reciprocal connection view) on every former member. The node id
// is retired permanently. Disconnecting an unconnected port is
// ErrNotConnected.
func (c *Circuit) Disconnect(p *Port) error {
	if p.node == 0 {
		return fmt.Errorf("circuit: %s: %w", p, ErrNotConnected)
	}
	if p.domain == Optical {
		pair, ok := c.onodes[p.node]
		if !ok {
			return fmt.Errorf("circuit: %s: %w", p, ErrForeignPort)
		}
		delete(c.onodes, p.node)
		pair[0].node = 0
		pair[1].node = 0
		return nil
	}
	members, ok := c.enodes[p.node]
	if !ok {
		return fmt.Errorf("circuit: %s: %w", p, ErrForeignPort)
	}
	delete(c.enodes, p.node)
	for _, m := range members {
		m.node = 0
	}
	return nil
}

// Remove disconnects every port of dev, leaving the netlist free of any
// node referencing the device. Removing an already-isolated device is a
// no-op, so Remove is safe to call twice.
func (c *Circuit) Remove(dev *Device) {
	for _, p := range dev.oports {
		if p.Connected() {
			_ = c.Disconnect(p)
		}
	}
	for _, p := range dev.eports {
		if p.Connected() {
			_ = c.Disconnect(p)
		}
	}
}

// sortedIDs returns arena keys in ascending (insertion) order.
func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Components returns the device instances reachable through the netlist,
// first-seen order across connections, no duplicates. A device appears in
// the order of the connection that introduced it, not its declaration
// order.
func (c *Circuit) Components() []*Device {
	var out []*Device
	seen := make(map[*Device]bool)
	add := func(p *Port) {
		if !seen[p.owner] {
			seen[p.owner] = true
			out = append(out, p.owner)
		}
	}
	for _, id := range sortedIDs(c.onodes) {
		pair := c.onodes[id]
		add(pair[0])
		add(pair[1])
	}
	for _, id := range sortedIDs(c.enodes) {
		for _, p := range c.enodes[id] {
			add(p)
		}
	}
	return out
}

// Contains reports whether p belongs to one of the circuit's components.
func (c *Circuit) Contains(p *Port) bool {
	for _, dev := range c.Components() {
		if p.owner == dev {
			return true
		}
	}
	return false
}

// FreePorts returns the unconnected optical ports of every component, in
// component order then port declaration order. These are the external ports
// of the reduced circuit.
func (c *Circuit) FreePorts() []*Port {
	var out []*Port
	for _, dev := range c.Components() {
		for _, p := range dev.oports {
			if !p.Connected() {
				out = append(out, p)
			}
		}
	}
	return out
}
