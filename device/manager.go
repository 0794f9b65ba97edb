// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

package lifxdevice

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"
	"sync"

	"github.com/sirupsen/logrus"

	protocol "github.com/theckman/lifx/protocol"
	payloads "github.com/theckman/lifx/protocol/payloads"
)

const (
	lifxPort       = 56700
	recvBufferSize = 1024
	defaultSource  = 0x00000002
)

// ManagerOption configures a Manager at construction time.
type ManagerOption func(*Manager)

// WithSource overrides the source identifier the Manager stamps on outbound
// packets. Per the protocol spec, values of 0 and 1 get special treatment by
// some firmware, so this is rejected.
func WithSource(source uint32) ManagerOption {
	return func(m *Manager) {
		if source > 1 {
			m.source = source
		}
	}
}

// WithLogger overrides the logger a Manager uses for per-packet diagnostics.
func WithLogger(log *logrus.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// Manager owns the UDP socket used to talk to LIFX devices on the LAN,
// keeps a registry of Bulbs keyed by MAC address, and runs the single
// goroutine that reads incoming packets and folds them into that registry.
type Manager struct {
	conn           *net.UDPConn
	source         uint32
	broadcastAddrs []*net.UDPAddr
	log            *logrus.Logger

	mu    sync.Mutex
	bulbs map[string]*Bulb

	closeOnce sync.Once
	done      chan struct{}
}

// NewManager opens a UDP socket, resolves the LAN broadcast addresses, and
// starts the receive loop. Callers must call Discover to populate the
// registry, and Close to release the socket.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: 0, IP: net.IPv4zero})
	if err != nil {
		return nil, fmt.Errorf("lifxdevice: failed to open UDP socket: %w", err)
	}

	// broadcastAddrs is resolved once here, best-effort: a resolution error
	// is ignored and leaves the list empty, so a host without a
	// broadcast-capable interface still gets a Manager; Discover returns an
	// error when the list is empty.
	bAddrs, _ := resolveBroadcastUDPAddresses(lifxPort)

	m := &Manager{
		conn:           conn,
		source:         defaultSource,
		broadcastAddrs: bAddrs,
		log:            logrus.StandardLogger(),
		bulbs:          map[string]*Bulb{},
		done:           make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	go m.receiveLoop()

	return m, nil
}

// Discover broadcasts a DeviceGetService request to the IPv4 broadcast
// address of every non-loopback, broadcast-capable interface. Responses
// arrive asynchronously on the receive loop and populate the bulb registry.
func (m *Manager) Discover() error {
	if len(m.broadcastAddrs) == 0 {
		return fmt.Errorf("lifxdevice: no broadcast-capable interface available")
	}

	pkt := protocol.Build(
		protocol.BuildOptions{Source: m.source},
		protocol.DeviceGetService,
		&payloads.EmptyPayload{},
	)

	var firstErr error
	for _, addr := range m.broadcastAddrs {
		if err := m.send(addr, pkt); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Refresh sends whatever refresh packets every known bulb's stale
// attributes require. Each bulb's sends are dispatched on their own
// goroutine so a single slow write can't stall refreshing the rest.
func (m *Manager) Refresh() {
	type pending struct {
		addr *net.UDPAddr
		pkt  *protocol.Packet
	}
	var out []pending

	m.mu.Lock()
	for _, b := range m.bulbs {
		for _, pkt := range b.QueryForMissingInfo() {
			out = append(out, pending{b.Addr, pkt})
		}
	}
	m.mu.Unlock()

	for _, p := range out {
		go func(addr *net.UDPAddr, p *protocol.Packet) {
			if err := m.send(addr, p); err != nil {
				m.log.WithError(err).Warn("lifxdevice: refresh send failed")
			}
		}(p.addr, p.pkt)
	}
}

// Bulbs returns a snapshot of the current bulb registry, keyed by MAC
// address string.
func (m *Manager) Bulbs() map[string]*Bulb {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make(map[string]*Bulb, len(m.bulbs))
	for k, v := range m.bulbs {
		snapshot[k] = v
	}
	return snapshot
}

// Close stops the receive loop and releases the UDP socket.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return m.conn.Close()
}

func (m *Manager) send(addr *net.UDPAddr, pkt *protocol.Packet) error {
	data, err := pkt.MarshalPacket(binary.LittleEndian)
	if err != nil {
		return fmt.Errorf("lifxdevice: failed to marshal packet: %w", err)
	}

	_, err = m.conn.WriteToUDP(data, addr)
	return err
}

func (m *Manager) receiveLoop() {
	buf := make([]byte, recvBufferSize)

	for {
		n, addr, err := m.conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-m.done:
				return
			default:
			}

			m.log.WithError(err).Error("lifxdevice: fatal receive error, stopping receive loop")
			return
		}

		m.handleMessage(buf[:n], addr)
	}
}

func (m *Manager) handleMessage(data []byte, addr *net.UDPAddr) {
	pkt := &protocol.Packet{}

	if err := pkt.UnmarshalPacket(bytes.NewReader(data), binary.LittleEndian); err != nil {
		m.log.WithError(err).Warn("lifxdevice: dropping malformed packet")
		return
	}

	target := pkt.Header.FrameAddress.Target
	if isZeroTarget(target) {
		m.log.Debug("lifxdevice: dropping packet with zero target")
		return
	}
	key := target.String()

	m.mu.Lock()
	b, ok := m.bulbs[key]
	if !ok {
		b = NewBulb(m.source, target, func(p *protocol.Packet) error { return m.send(addr, p) }, addr)
		m.bulbs[key] = b
		m.log.WithField("target", key).Debug("lifxdevice: discovered bulb")
	} else {
		b.Update(addr)
	}
	b.ApplyState(pkt.Payload)
	m.mu.Unlock()

	m.log.WithFields(logrus.Fields{
		"target": key,
		"type":   pkt.Header.ProtocolHeader.Type,
	}).Debug("lifxdevice: dispatched message")
}

// resolveBroadcastUDPAddresses returns the IPv4 broadcast address of every
// non-loopback, broadcast-capable, up interface -- a multi-homed host (e.g.
// wired + wireless on separate subnets) can have bulbs reachable only
// through one or the other, so Discover needs all of them, not just the
// first.
func resolveBroadcastUDPAddresses(port int) ([]*net.UDPAddr, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("lifxdevice: could not list interfaces: %w", err)
	}

	var out []*net.UDPAddr

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&(net.FlagUp|net.FlagBroadcast) != (net.FlagUp | net.FlagBroadcast) {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok || ipnet.IP.To4() == nil {
				continue
			}

			ip := ipnet.IP.To4()
			mask := ipnet.Mask
			broadcast := make(net.IP, 4)
			for i := 0; i < 4; i++ {
				broadcast[i] = ip[i] | ^mask[i]
			}

			out = append(out, &net.UDPAddr{IP: broadcast, Port: port})
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("lifxdevice: no suitable broadcast interface found")
	}

	return out, nil
}

// isZeroTarget reports whether target is empty or the all-zero MAC, which
// the protocol uses to mean "no specific device" and must never be treated
// as identifying a real bulb.
func isZeroTarget(target net.HardwareAddr) bool {
	for _, b := range target {
		if b != 0 {
			return false
		}
	}
	return true
}
