// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

// Package lifxproduct is a static lookup table of LIFX (vendor, product) IDs
// to the capabilities that product supports. The Manager uses the Multizone
// flag to decide whether a bulb's color state is a single LightHSBK or the
// zoned StateMultiZone form.
package lifxproduct

// Info describes what a LIFX product supports. Data is taken from
// https://github.com/LIFX/products/blob/master/products.json -- vendor 1 is
// the only vendor ID LIFX has shipped under.
type Info struct {
	Name      string
	Color     bool
	Infrared  bool
	Multizone bool
	Chain     bool
}

type key struct {
	vendor  uint32
	product uint32
}

var products = map[key]Info{
	{1, 1}:  {Name: "Original 1000", Color: true},
	{1, 3}:  {Name: "Color 650", Color: true},
	{1, 10}: {Name: "White 800 (Low Voltage)"},
	{1, 11}: {Name: "White 800 (High Voltage)"},
	{1, 18}: {Name: "White 900 BR30 (Low Voltage)"},
	{1, 20}: {Name: "Color 1000 BR30", Color: true},
	{1, 22}: {Name: "Color 1000", Color: true},
	{1, 27}: {Name: "LIFX A19", Color: true},
	{1, 28}: {Name: "LIFX BR30", Color: true},
	{1, 29}: {Name: "LIFX+ A19", Color: true, Infrared: true},
	{1, 30}: {Name: "LIFX+ BR30", Color: true, Infrared: true},
	{1, 31}: {Name: "LIFX Z", Color: true, Multizone: true},
	{1, 32}: {Name: "LIFX Z 2", Color: true, Multizone: true},
	{1, 36}: {Name: "LIFX Downlight", Color: true},
	{1, 37}: {Name: "LIFX Downlight", Color: true},
	{1, 38}: {Name: "LIFX Beam", Color: true, Multizone: true},
	{1, 43}: {Name: "LIFX A19", Color: true},
	{1, 44}: {Name: "LIFX BR30", Color: true},
	{1, 45}: {Name: "LIFX+ A19", Color: true, Infrared: true},
	{1, 46}: {Name: "LIFX+ BR30", Color: true, Infrared: true},
	{1, 49}: {Name: "LIFX Mini", Color: true},
	{1, 50}: {Name: "LIFX Mini Day and Dusk"},
	{1, 51}: {Name: "LIFX Mini White"},
	{1, 52}: {Name: "LIFX GU10", Color: true},
	{1, 55}: {Name: "LIFX Tile", Color: true, Chain: true},
	{1, 59}: {Name: "LIFX Mini Color", Color: true},
	{1, 60}: {Name: "LIFX Mini Day and Dusk"},
	{1, 61}: {Name: "LIFX Mini White"},
}

// Lookup returns the Info for a (vendor, product) pair taken from a
// StateVersion message, and whether that pair is a known product.
func Lookup(vendor, product uint32) (Info, bool) {
	info, ok := products[key{vendor: vendor, product: product}]
	return info, ok
}
