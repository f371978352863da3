package modelio

import (
	"fmt"

	"github.com/oliviagraph/olivia"
)

func errBadMagic(got [4]byte) error {
	return fmt.Errorf("modelio: bad magic %q: %w", got[:], olivia.CorruptedModel)
}

func errUnsupportedVersion(v byte) error {
	return fmt.Errorf("modelio: unsupported version %d: %w", v, olivia.CorruptedModel)
}

func errChecksum(section string) error {
	return fmt.Errorf("modelio: checksum mismatch in section %q: %w", section, olivia.CorruptedModel)
}

func errTruncated(section string) error {
	return fmt.Errorf("modelio: truncated section %q: %w", section, olivia.CorruptedModel)
}
