package lockfreeset

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// allocSlots creates a demand-paged anonymous mapping for n uint64 slots and
// returns it as a slice, plus the raw bytes for later Munmap. The mapping is
// private, anonymous, and MAP_NORESERVE: the kernel does not commit swap
// space up front, and pages are backed only once touched, which matters
// because tables are routinely sized far beyond their eventual occupancy.
func allocSlots(n uint64) (slots []uint64, raw []byte, err error) {
	size := int(n * 8)

	raw, err = unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS|unix.MAP_NORESERVE)
	if err != nil {
		return nil, nil, fmt.Errorf("lockfreeset: mmap %d bytes: %w", size, err)
	}

	slots = unsafe.Slice((*uint64)(unsafe.Pointer(&raw[0])), n)

	return slots, raw, nil
}

func freeSlots(raw []byte) error {
	if raw == nil {
		return nil
	}

	if err := unix.Munmap(raw); err != nil {
		return fmt.Errorf("lockfreeset: munmap: %w", err)
	}

	return nil
}
