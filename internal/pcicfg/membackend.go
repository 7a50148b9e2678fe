package pcicfg

import "fmt"

// MemBackend is a memory-backed Backend: a 256-byte config space per device,
// little-endian, with reads of absent devices failing like an aborted
// firmware transaction. Used by the pcicfg self-test and by unit tests.
type MemBackend struct {
	devices map[Address]*[256]byte
}

// NewMemBackend returns an empty backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{devices: make(map[Address]*[256]byte)}
}

// AddDevice registers a device with the given vendor and device IDs and
// returns its config space for further setup.
func (b *MemBackend) AddDevice(addr Address, vendor, device uint16) *[256]byte {
	space := new([256]byte)
	space[0] = byte(vendor)
	space[1] = byte(vendor >> 8)
	space[2] = byte(device)
	space[3] = byte(device >> 8)
	b.devices[addr] = space
	return space
}

// Read implements Backend.
func (b *MemBackend) Read(addr Address, offset uint16, width Width) (uint32, error) {
	space, ok := b.devices[addr]
	if !ok {
		return 0, fmt.Errorf("no device at %s", addr)
	}
	if int(offset)+int(width) > len(space) {
		return 0, fmt.Errorf("offset %#x out of range", offset)
	}

	var value uint32
	for i := 0; i < int(width); i++ {
		value |= uint32(space[int(offset)+i]) << (8 * i)
	}
	return value, nil
}

// Write implements Backend.
func (b *MemBackend) Write(addr Address, offset uint16, width Width, value uint32) error {
	space, ok := b.devices[addr]
	if !ok {
		return fmt.Errorf("no device at %s", addr)
	}
	if int(offset)+int(width) > len(space) {
		return fmt.Errorf("offset %#x out of range", offset)
	}

	for i := 0; i < int(width); i++ {
		space[int(offset)+i] = byte(value >> (8 * i))
	}
	return nil
}
