// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

package lifxprotocol

import (
	"net"

	"github.com/theckman/lifx/protocol/payloads"

	. "gopkg.in/check.v1"
)

func (t *TestSuite) TestBuild(c *C) {
	target := net.HardwareAddr{0x1, 0x2, 0x3, 0x4, 0x5, 0x6}

	pkt := Build(BuildOptions{
		Source:      t.source,
		Target:      target,
		AckRequired: true,
		Sequence:    7,
	}, DeviceGetLabel, &lifxpayloads.EmptyPayload{})

	c.Assert(pkt.Header, NotNil)
	c.Check(pkt.Header.Frame.Source, Equals, t.source)
	c.Check(pkt.Header.Frame.Tagged, Equals, false)
	c.Check(pkt.Header.FrameAddress.Target.String(), Equals, target.String())
	c.Check(pkt.Header.FrameAddress.AckRequired, Equals, true)
	c.Check(pkt.Header.FrameAddress.Sequence, Equals, uint8(7))
	c.Check(pkt.Header.ProtocolHeader.Type, Equals, DeviceGetLabel)

	packet, err := pkt.MarshalPacket(t.order)
	c.Assert(err, IsNil)
	c.Assert(len(packet) > 0, Equals, true)
}

func (t *TestSuite) TestBuild_Tagged(c *C) {
	pkt := Build(BuildOptions{Source: t.source}, DeviceGetService, &lifxpayloads.EmptyPayload{})
	c.Check(pkt.Header.Frame.Tagged, Equals, true)
}

func (t *TestSuite) TestBuild_TaggedFalseWithTarget(c *C) {
	target := net.HardwareAddr{0x1, 0x2, 0x3, 0x4, 0x5, 0x6}
	pkt := Build(BuildOptions{Source: t.source, Target: target}, DeviceGetLabel, &lifxpayloads.EmptyPayload{})
	c.Check(pkt.Header.Frame.Tagged, Equals, false)
}
