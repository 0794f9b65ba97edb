// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

package lifxpayloads

import (
	. "gopkg.in/check.v1"
)

func (*TestSuite) TestService_Validate(c *C) {
	c.Check(ServiceUDP.Validate(), IsNil)
	c.Check(Service(0).Validate(), NotNil)
	c.Check(Service(2).Validate(), NotNil)
}

func (*TestSuite) TestPowerLevel_Validate(c *C) {
	c.Check(PowerOff.Validate(), IsNil)
	c.Check(PowerOn.Validate(), IsNil)
	c.Check(PowerLevel(1).Validate(), NotNil)
	c.Check(PowerLevel(32768).Validate(), NotNil)
}

func (*TestSuite) TestWaveform_Validate(c *C) {
	c.Check(WaveformSaw.Validate(), IsNil)
	c.Check(WaveformPulse.Validate(), IsNil)
	c.Check(Waveform(5).Validate(), NotNil)
}

func (*TestSuite) TestApplicationRequest_Validate(c *C) {
	c.Check(ApplicationRequestNoApply.Validate(), IsNil)
	c.Check(ApplicationRequestApplyOnly.Validate(), IsNil)
	c.Check(ApplicationRequest(3).Validate(), NotNil)
}

func (*TestSuite) TestInvalidEnumError_Error(c *C) {
	err := &InvalidEnumError{Field: "Waveform", Value: 9}
	c.Check(err.Error(), Equals, "lifxpayloads: invalid value 9 for field Waveform")
}
