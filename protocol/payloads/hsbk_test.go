// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

package lifxpayloads

import (
	. "gopkg.in/check.v1"
)

func (*TestSuite) TestNewHSBKWhite(c *C) {
	hsbk := NewHSBKWhite(KelvinWarm, 1.0)

	c.Check(hsbk.Hue, Equals, uint16(0))
	c.Check(hsbk.Saturation, Equals, uint16(0))
	c.Check(hsbk.Brightness, Equals, uint16(65535))
	c.Check(hsbk.Kelvin, Equals, KelvinWarm)
}

func (*TestSuite) TestNewHSBKWhite_Rounds(c *C) {
	// 0.5 * 65535 = 32767.5, which must round up to 32768, not truncate to 32767
	hsbk := NewHSBKWhite(KelvinNeutral, 0.5)
	c.Check(hsbk.Brightness, Equals, uint16(32768))
}

func (*TestSuite) TestNewHSBKColor(c *C) {
	hsbk := NewHSBKColor(360, 1.0, 1.0)

	c.Check(hsbk.Saturation, Equals, uint16(65535))
	c.Check(hsbk.Brightness, Equals, uint16(65535))
	c.Check(hsbk.Kelvin, Equals, KelvinNeutral)
}

func (*TestSuite) TestDescribeKelvin(c *C) {
	c.Check(DescribeKelvin(1000), Equals, "Candlelight")
	c.Check(DescribeKelvin(9000), Equals, "Blue Ice")
	c.Check(DescribeKelvin(3000), Equals, "Warm")
}

func (*TestSuite) TestLightHSBK_Describe(c *C) {
	hsbk := &LightHSBK{Hue: 0, Saturation: 65535, Brightness: 65535, Kelvin: KelvinWarm}

	c.Check(hsbk.Describe(true), Equals, "0°, 100% saturation, 100% brightness")
	c.Check(hsbk.Describe(false), Equals, "0°, 100% saturation, 100% brightness, 3000K (Warm)")
}

func (*TestSuite) TestLightHSBK_Describe_Nil(c *C) {
	var hsbk *LightHSBK
	c.Check(hsbk.Describe(true), Equals, "<nil>")
}
