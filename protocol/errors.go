// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

package lifxprotocol

import "fmt"

// UnknownMessageTypeError is returned when a packet's ProtocolHeader.Type
// field does not match any message type this package knows how to decode.
// It is distinct from a ProtocolError because the header itself parsed
// fine -- only the payload dispatch failed.
type UnknownMessageTypeError struct {
	Type uint16
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("lifxprotocol: unknown message type %d (%s)", e.Type, phTypetoString(e.Type))
}

// ProtocolError is returned when a packet decodes structurally but violates
// a protocol-level constraint, such as an enum field holding a value outside
// its documented range.
type ProtocolError struct {
	Detail string
}

func (e *ProtocolError) Error() string {
	return "lifxprotocol: " + e.Detail
}
