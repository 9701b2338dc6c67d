package circuit

import (
	"fmt"

	"github.com/lightpath-sim/lightpath/sparam"
)

// Domain distinguishes the two kinds of ports a device can expose.
type Domain int

const (
	// Optical ports carry light; their connections are point-to-point.
	Optical Domain = iota
	// Electrical ports carry bias/control signals; their connections form
	// N-ary nets.
	Electrical
)

// String returns "optical" or "electrical".
func (d Domain) String() string {
	if d == Optical {
		return "optical"
	}
	return "electrical"
}

// SParamFunc maps a wavelength sweep to a frequency-indexed S-matrix of
// shape (len(wl) or 1) × n × n, where n is the device's optical port count.
// It must be pure: same sweep in, same matrix out.
type SParamFunc func(wl []float64) (*sparam.Matrix, error)

// Port is one endpoint of a device. Its identity — owning device, domain,
// name, declaration index — is fixed at device construction and never
// changes. Connection state lives in the owning circuit's node arena; the
// port carries only its current node id.
type Port struct {
	owner  *Device
	domain Domain
	name   string
	index  int
	node   int // arena node id; 0 while unconnected
}

// Owner returns the device this port belongs to.
func (p *Port) Owner() *Device { return p.owner }

// Domain returns the port's domain.
func (p *Port) Domain() Domain { return p.domain }

// Name returns the port's declared name.
func (p *Port) Name() string { return p.name }

// Index returns the port's position in its device's declaration order.
func (p *Port) Index() int { return p.index }

// Connected reports whether the port is currently a member of a node.
func (p *Port) Connected() bool { return p.node != 0 }

// NodeID returns the id of the node the port belongs to, or 0 while
// unconnected. Ids are monotonic per domain and never reused.
func (p *Port) NodeID() int { return p.node }

// String renders the port as "device.port".
func (p *Port) String() string { return p.owner.name + "." + p.name }

// DeviceSpec declares a device's ports and S-parameter function.
//
// Optical ports may be declared by names, by count (names default to
// o0..oN-1), or both (in which case they must agree); electrical ports
// likewise with e0..eN-1 defaults. At least one port of either domain and a
// non-nil SParams are required.
type DeviceSpec struct {
	ONames []string
	OCount int
	ENames []string
	ECount int

	SParams SParamFunc
}

// Device is a named component instance: ordered optical and electrical
// ports plus a pure S-parameter function. Ports never move between devices.
type Device struct {
	name   string
	oports []*Port
	eports []*Port
	sfn    SParamFunc
}

// resolveNames reconciles a name list with a count, generating defaults
// from the prefix when only a count is given.
func resolveNames(names []string, count int, prefix string) ([]string, error) {
	if len(names) > 0 && count > 0 && len(names) != count {
		return nil, fmt.Errorf("circuit: %d %sports declared but %d names given: %w",
			count, prefix, len(names), ErrModelValidation)
	}
	if len(names) > 0 {
		return names, nil
	}
	out := make([]string, count)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return out, nil
}

// NewDevice validates spec and builds a device instance.
func NewDevice(name string, spec DeviceSpec) (*Device, error) {
	onames, err := resolveNames(spec.ONames, spec.OCount, "o")
	if err != nil {
		return nil, err
	}
	enames, err := resolveNames(spec.ENames, spec.ECount, "e")
	if err != nil {
		return nil, err
	}
	if len(onames) == 0 && len(enames) == 0 {
		return nil, fmt.Errorf("circuit: device %q declares no ports: %w", name, ErrModelValidation)
	}
	if spec.SParams == nil {
		return nil, fmt.Errorf("circuit: device %q has no s-parameter function: %w", name, ErrModelValidation)
	}

	d := &Device{name: name, sfn: spec.SParams}
	for i, n := range onames {
		d.oports = append(d.oports, &Port{owner: d, domain: Optical, name: n, index: i})
	}
	for i, n := range enames {
		d.eports = append(d.eports, &Port{owner: d, domain: Electrical, name: n, index: i})
	}
	return d, nil
}

// Name returns the device's instance name.
func (d *Device) Name() string { return d.name }

// OPorts returns the device's optical ports in declaration order.
func (d *Device) OPorts() []*Port {
	out := make([]*Port, len(d.oports))
	copy(out, d.oports)
	return out
}

// EPorts returns the device's electrical ports in declaration order.
func (d *Device) EPorts() []*Port {
	out := make([]*Port, len(d.eports))
	copy(out, d.eports)
	return out
}

// O returns the optical port at declaration index i.
// An out-of-range index is a programmer error and panics.
func (d *Device) O(i int) *Port {
	if i < 0 || i >= len(d.oports) {
		panic(fmt.Sprintf("circuit: device %q has no optical port %d", d.name, i))
	}
	return d.oports[i]
}

// E returns the electrical port at declaration index i.
// An out-of-range index is a programmer error and panics.
func (d *Device) E(i int) *Port {
	if i < 0 || i >= len(d.eports) {
		panic(fmt.Sprintf("circuit: device %q has no electrical port %d", d.name, i))
	}
	return d.eports[i]
}

// OName returns the optical port with the given declared name.
// An unknown name is a programmer error and panics.
func (d *Device) OName(name string) *Port {
	for _, p := range d.oports {
		if p.name == name {
			return p
		}
	}
	panic(fmt.Sprintf("circuit: device %q has no optical port %q", d.name, name))
}

// EName returns the electrical port with the given declared name.
// An unknown name is a programmer error and panics.
func (d *Device) EName(name string) *Port {
	for _, p := range d.eports {
		if p.name == name {
			return p
		}
	}
	panic(fmt.Sprintf("circuit: device %q has no electrical port %q", d.name, name))
}

// NextUnconnectedO returns the first optical port with no connection, or nil
// when every optical port is taken.
func (d *Device) NextUnconnectedO() *Port {
	for _, p := range d.oports {
		if !p.Connected() {
			return p
		}
	}
	return nil
}

// NextUnconnectedE returns the first electrical port with no connection, or
// nil when every electrical port is taken.
func (d *Device) NextUnconnectedE() *Port {
	for _, p := range d.eports {
		if !p.Connected() {
			return p
		}
	}
	return nil
}
