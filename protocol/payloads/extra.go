// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

package lifxpayloads

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// MultiZoneColorCount is the number of LightHSBK values carried in a single
// StateMultiZone message.
const MultiZoneColorCount = 8

// EmptyPayload is used for every message type that carries no payload bytes
// at all -- the Get* family and Acknowledgement.
type EmptyPayload struct{}

func (*EmptyPayload) String() string {
	return "<*lifxpayloads.EmptyPayload>"
}

// MarshalPacket is a function that satisfies the lifxprotocol.Marshaler
// interface.
func (*EmptyPayload) MarshalPacket(order binary.ByteOrder) ([]byte, error) {
	return []byte{}, nil
}

// UnmarshalPacket is a function that satisfies the lifxprotocol.Unmarshaler
// interface.
func (*EmptyPayload) UnmarshalPacket(data io.Reader, order binary.ByteOrder) error {
	return nil
}

// LightSetWaveform is the payload for a client requesting an animated color
// transition via a waveform rather than a single linear fade.
type LightSetWaveform struct {
	Reserved  uint8
	Color     *LightHSBK
	Period    time.Duration
	Cycles    float32
	SkewRatio int16
	Waveform  Waveform
}

func (w *LightSetWaveform) String() string {
	if w == nil {
		return "<*lifxpayloads.LightSetWaveform(nil)>"
	}
	return fmt.Sprintf(
		"<*lifxpayloads.LightSetWaveform(%p): Waveform: %d, Period: %s, Cycles: %f>",
		w, w.Waveform, w.Period, w.Cycles,
	)
}

// MarshalPacket is a function that satisfies the lifxprotocol.Marshaler
// interface.
func (w *LightSetWaveform) MarshalPacket(order binary.ByteOrder) ([]byte, error) {
	if w.Color == nil {
		return nil, ErrLightColorNotSet
	}

	if err := w.Waveform.Validate(); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}

	if err := binary.Write(buf, order, w.Reserved); err != nil {
		return nil, err
	}

	colorPacket, err := w.Color.MarshalPacket(order)
	if err != nil {
		return nil, err
	}
	if _, err := buf.Write(colorPacket); err != nil {
		return nil, err
	}

	if err := binary.Write(buf, order, durToMs(w.Period)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, order, w.Cycles); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, order, w.SkewRatio); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, order, uint8(w.Waveform)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalPacket is a function that satisfies the lifxprotocol.Unmarshaler
// interface.
func (w *LightSetWaveform) UnmarshalPacket(data io.Reader, order binary.ByteOrder) (err error) {
	if err = binary.Read(data, order, &w.Reserved); err != nil {
		return
	}

	if w.Color == nil {
		w.Color = &LightHSBK{}
	}
	if err = w.Color.UnmarshalPacket(data, order); err != nil {
		return
	}

	var periodMs uint32
	if err = binary.Read(data, order, &periodMs); err != nil {
		return
	}
	w.Period = msToDur(periodMs)

	if err = binary.Read(data, order, &w.Cycles); err != nil {
		return
	}
	if err = binary.Read(data, order, &w.SkewRatio); err != nil {
		return
	}

	var waveform uint8
	if err = binary.Read(data, order, &waveform); err != nil {
		return
	}
	w.Waveform = Waveform(waveform)

	return w.Waveform.Validate()
}

// LightSetWaveformOptional is identical to LightSetWaveform but lets the
// caller opt individual HSBK components out of the transition, leaving the
// device's current value for that component untouched.
type LightSetWaveformOptional struct {
	LightSetWaveform
	SetHue        bool
	SetSaturation bool
	SetBrightness bool
	SetKelvin     bool
}

func (w *LightSetWaveformOptional) String() string {
	if w == nil {
		return "<*lifxpayloads.LightSetWaveformOptional(nil)>"
	}
	return fmt.Sprintf(
		"<*lifxpayloads.LightSetWaveformOptional(%p): %s, SetHue: %t, SetSaturation: %t, SetBrightness: %t, SetKelvin: %t>",
		w, w.LightSetWaveform.String(), w.SetHue, w.SetSaturation, w.SetBrightness, w.SetKelvin,
	)
}

// MarshalPacket is a function that satisfies the lifxprotocol.Marshaler
// interface.
func (w *LightSetWaveformOptional) MarshalPacket(order binary.ByteOrder) ([]byte, error) {
	base, err := w.LightSetWaveform.MarshalPacket(order)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(base)

	for _, v := range []bool{w.SetHue, w.SetSaturation, w.SetBrightness, w.SetKelvin} {
		if err := binary.Write(buf, order, boolToUint8(v)); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalPacket is a function that satisfies the lifxprotocol.Unmarshaler
// interface.
func (w *LightSetWaveformOptional) UnmarshalPacket(data io.Reader, order binary.ByteOrder) (err error) {
	if err = w.LightSetWaveform.UnmarshalPacket(data, order); err != nil {
		return
	}

	flags := make([]*bool, 4)
	flags[0] = &w.SetHue
	flags[1] = &w.SetSaturation
	flags[2] = &w.SetBrightness
	flags[3] = &w.SetKelvin

	for _, f := range flags {
		var b uint8
		if err = binary.Read(data, order, &b); err != nil {
			return
		}
		*f = b != 0
	}

	return
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// LightInfrared is the payload shared by LightStateInfrared and
// LightSetInfrared -- the current or requested maximum infrared brightness.
type LightInfrared struct {
	Brightness uint16
}

func (li *LightInfrared) String() string {
	if li == nil {
		return "<*lifxpayloads.LightInfrared(nil)>"
	}
	return fmt.Sprintf("<*lifxpayloads.LightInfrared(%p): Brightness: %d>", li, li.Brightness)
}

// MarshalPacket is a function that satisfies the lifxprotocol.Marshaler
// interface.
func (li *LightInfrared) MarshalPacket(order binary.ByteOrder) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, order, li.Brightness); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalPacket is a function that satisfies the lifxprotocol.Unmarshaler
// interface.
func (li *LightInfrared) UnmarshalPacket(data io.Reader, order binary.ByteOrder) error {
	return binary.Read(data, order, &li.Brightness)
}

// MultiZoneSetColorZones is sent by a client to set a range of zones on a
// multizone device (strip/beam) to a single color.
type MultiZoneSetColorZones struct {
	StartIndex uint8
	EndIndex   uint8
	Color      *LightHSBK
	Duration   time.Duration
	Apply      ApplicationRequest
}

func (m *MultiZoneSetColorZones) String() string {
	if m == nil {
		return "<*lifxpayloads.MultiZoneSetColorZones(nil)>"
	}
	return fmt.Sprintf(
		"<*lifxpayloads.MultiZoneSetColorZones(%p): Zones: %d-%d, Apply: %d>",
		m, m.StartIndex, m.EndIndex, m.Apply,
	)
}

// MarshalPacket is a function that satisfies the lifxprotocol.Marshaler
// interface.
func (m *MultiZoneSetColorZones) MarshalPacket(order binary.ByteOrder) ([]byte, error) {
	if m.Color == nil {
		return nil, ErrLightColorNotSet
	}
	if err := m.Apply.Validate(); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}

	if err := binary.Write(buf, order, m.StartIndex); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, order, m.EndIndex); err != nil {
		return nil, err
	}

	colorPacket, err := m.Color.MarshalPacket(order)
	if err != nil {
		return nil, err
	}
	if _, err := buf.Write(colorPacket); err != nil {
		return nil, err
	}

	if err := binary.Write(buf, order, durToMs(m.Duration)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, order, uint8(m.Apply)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalPacket is a function that satisfies the lifxprotocol.Unmarshaler
// interface.
func (m *MultiZoneSetColorZones) UnmarshalPacket(data io.Reader, order binary.ByteOrder) (err error) {
	if err = binary.Read(data, order, &m.StartIndex); err != nil {
		return
	}
	if err = binary.Read(data, order, &m.EndIndex); err != nil {
		return
	}

	if m.Color == nil {
		m.Color = &LightHSBK{}
	}
	if err = m.Color.UnmarshalPacket(data, order); err != nil {
		return
	}

	var durMs uint32
	if err = binary.Read(data, order, &durMs); err != nil {
		return
	}
	m.Duration = msToDur(durMs)

	var apply uint8
	if err = binary.Read(data, order, &apply); err != nil {
		return
	}
	m.Apply = ApplicationRequest(apply)

	return m.Apply.Validate()
}

// MultiZoneGetColorZones is sent by a client requesting the colors currently
// set on a range of zones.
type MultiZoneGetColorZones struct {
	StartIndex uint8
	EndIndex   uint8
}

func (m *MultiZoneGetColorZones) String() string {
	if m == nil {
		return "<*lifxpayloads.MultiZoneGetColorZones(nil)>"
	}
	return fmt.Sprintf(
		"<*lifxpayloads.MultiZoneGetColorZones(%p): Zones: %d-%d>",
		m, m.StartIndex, m.EndIndex,
	)
}

// MarshalPacket is a function that satisfies the lifxprotocol.Marshaler
// interface.
func (m *MultiZoneGetColorZones) MarshalPacket(order binary.ByteOrder) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, order, m.StartIndex); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, order, m.EndIndex); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalPacket is a function that satisfies the lifxprotocol.Unmarshaler
// interface.
func (m *MultiZoneGetColorZones) UnmarshalPacket(data io.Reader, order binary.ByteOrder) (err error) {
	if err = binary.Read(data, order, &m.StartIndex); err != nil {
		return
	}
	return binary.Read(data, order, &m.EndIndex)
}

// MultiZoneStateZone is a device's response describing the color of a
// single zone.
type MultiZoneStateZone struct {
	Count uint8
	Index uint8
	Color *LightHSBK
}

func (m *MultiZoneStateZone) String() string {
	if m == nil {
		return "<*lifxpayloads.MultiZoneStateZone(nil)>"
	}
	var color string
	if m.Color != nil {
		color = m.Color.String()
	} else {
		color = "<nil>"
	}
	return fmt.Sprintf(
		"<*lifxpayloads.MultiZoneStateZone(%p): Count: %d, Index: %d, Color: %s>",
		m, m.Count, m.Index, color,
	)
}

// MarshalPacket is a function that satisfies the lifxprotocol.Marshaler
// interface.
func (m *MultiZoneStateZone) MarshalPacket(order binary.ByteOrder) ([]byte, error) {
	if m.Color == nil {
		return nil, ErrLightColorNotSet
	}

	buf := &bytes.Buffer{}
	if err := binary.Write(buf, order, m.Count); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, order, m.Index); err != nil {
		return nil, err
	}

	colorPacket, err := m.Color.MarshalPacket(order)
	if err != nil {
		return nil, err
	}
	if _, err := buf.Write(colorPacket); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalPacket is a function that satisfies the lifxprotocol.Unmarshaler
// interface.
func (m *MultiZoneStateZone) UnmarshalPacket(data io.Reader, order binary.ByteOrder) (err error) {
	if err = binary.Read(data, order, &m.Count); err != nil {
		return
	}
	if err = binary.Read(data, order, &m.Index); err != nil {
		return
	}
	if m.Color == nil {
		m.Color = &LightHSBK{}
	}
	return m.Color.UnmarshalPacket(data, order)
}

// MultiZoneStateMultiZone is a device's response describing the colors of
// up to MultiZoneColorCount consecutive zones, starting at Index.
type MultiZoneStateMultiZone struct {
	Count  uint8
	Index  uint8
	Colors [MultiZoneColorCount]*LightHSBK
}

func (m *MultiZoneStateMultiZone) String() string {
	if m == nil {
		return "<*lifxpayloads.MultiZoneStateMultiZone(nil)>"
	}
	return fmt.Sprintf(
		"<*lifxpayloads.MultiZoneStateMultiZone(%p): Count: %d, Index: %d>",
		m, m.Count, m.Index,
	)
}

// MarshalPacket is a function that satisfies the lifxprotocol.Marshaler
// interface.
func (m *MultiZoneStateMultiZone) MarshalPacket(order binary.ByteOrder) ([]byte, error) {
	buf := &bytes.Buffer{}

	if err := binary.Write(buf, order, m.Count); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, order, m.Index); err != nil {
		return nil, err
	}

	for i := 0; i < MultiZoneColorCount; i++ {
		color := m.Colors[i]
		if color == nil {
			color = &LightHSBK{}
		}
		colorPacket, err := color.MarshalPacket(order)
		if err != nil {
			return nil, err
		}
		if _, err := buf.Write(colorPacket); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalPacket is a function that satisfies the lifxprotocol.Unmarshaler
// interface.
func (m *MultiZoneStateMultiZone) UnmarshalPacket(data io.Reader, order binary.ByteOrder) (err error) {
	if err = binary.Read(data, order, &m.Count); err != nil {
		return
	}
	if err = binary.Read(data, order, &m.Index); err != nil {
		return
	}

	for i := 0; i < MultiZoneColorCount; i++ {
		color := &LightHSBK{}
		if err = color.UnmarshalPacket(data, order); err != nil {
			return
		}
		m.Colors[i] = color
	}

	return
}
