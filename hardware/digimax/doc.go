// Package digimax implements the DigiMAX DAC expansion for the short bus.
//
// The DigiMAX is an 8-bit 4-channel digital sound output interface. On the
// short bus it occupies four registers, one for each channel. The base
// address of the register window can be relocated to be at either 0xde40 or
// 0xde48.
//
// Whether the registers are visible on the bus depends on two independent
// conditions: the host cartridge carrying the short bus must be present and
// operating; and the expansion itself must be enabled. The two conditions
// are tracked separately because without the host the expansion cannot be
// reached, but the user's enable setting must survive the host coming and
// going.
package digimax
