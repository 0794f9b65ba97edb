// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

package lifxpayloads

import "fmt"

// InvalidEnumError is returned by an enum type's Validate method when the
// wire value is out of the range the protocol defines for that field.
type InvalidEnumError struct {
	Field string
	Value uint64
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("lifxpayloads: invalid value %d for field %s", e.Value, e.Field)
}

// Service is the value of the DeviceStateService.Service field.
type Service uint8

// ServiceUDP is the only service the LIFX LAN protocol defines at the time
// of writing.
const ServiceUDP Service = 1

// Validate returns an error if the Service value isn't one the protocol
// defines.
func (s Service) Validate() error {
	if s != ServiceUDP {
		return &InvalidEnumError{Field: "Service", Value: uint64(s)}
	}
	return nil
}

// PowerLevel is the value used by Device/Light power messages. The protocol
// only defines the fully off and fully on values; anything else is invalid.
type PowerLevel uint16

const (
	PowerOff PowerLevel = 0
	PowerOn  PowerLevel = 65535
)

// Validate returns an error if the PowerLevel isn't PowerOff or PowerOn.
func (p PowerLevel) Validate() error {
	if p != PowerOff && p != PowerOn {
		return &InvalidEnumError{Field: "PowerLevel", Value: uint64(p)}
	}
	return nil
}

// Waveform selects the transition shape used by LightSetWaveform and
// LightSetWaveformOptional.
type Waveform uint8

const (
	WaveformSaw Waveform = iota
	WaveformSine
	WaveformHalfSine
	WaveformTriangle
	WaveformPulse
)

// Validate returns an error if the Waveform value is outside the defined
// range (0-4).
func (w Waveform) Validate() error {
	if w > WaveformPulse {
		return &InvalidEnumError{Field: "Waveform", Value: uint64(w)}
	}
	return nil
}

// ApplicationRequest controls whether a MultiZone color-zone update is
// applied immediately or staged until a following message with Apply set.
type ApplicationRequest uint8

const (
	ApplicationRequestNoApply ApplicationRequest = iota
	ApplicationRequestApply
	ApplicationRequestApplyOnly
)

// Validate returns an error if the ApplicationRequest value is outside the
// defined range (0-2).
func (a ApplicationRequest) Validate() error {
	if a > ApplicationRequestApplyOnly {
		return &InvalidEnumError{Field: "ApplicationRequest", Value: uint64(a)}
	}
	return nil
}
