// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

package lifxprotocol

import (
	. "gopkg.in/check.v1"
)

func (*TestSuite) TestUnknownMessageTypeError_Error(c *C) {
	err := &UnknownMessageTypeError{Type: 9001}
	c.Check(err.Error(), Equals, "lifxprotocol: unknown message type 9001 (UnknownType)")
}

func (*TestSuite) TestProtocolError_Error(c *C) {
	err := &ProtocolError{Detail: "enum out of range"}
	c.Check(err.Error(), Equals, "lifxprotocol: enum out of range")
}
