package escrow

import (
	"encoding/binary"

	"filippo.io/edwards25519"
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// RecordCondition returns the condition that owns the custody of the
// record opened by maker with seed. Bump is the canonical bump returned by
// RecordAddress.
func RecordCondition(maker tokenswap.Address, seed uint64, bump uint8) tokenswap.Condition {
	data := make([]byte, 0, len(maker)+9)
	data = append(data, maker...)
	data = binary.LittleEndian.AppendUint64(data, seed)
	data = append(data, bump)
	return tokenswap.NewCondition("escrow", "pda", data)
}

// RecordAddress derives the address of the record opened by maker with
// seed. Bumps are tried from 255 down and the first one yielding an
// address that is not a valid ed25519 point is used, so no private key can
// exist for the result.
func RecordAddress(maker tokenswap.Address, seed uint64) (tokenswap.Address, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		addr := RecordCondition(maker, seed, uint8(bump)).Address()
		if isOffCurve(addr) {
			return addr, uint8(bump), nil
		}
	}
	return nil, 0, errors.Wrapf(errors.ErrState, "no record address for seed %d", seed)
}

func isOffCurve(addr tokenswap.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(addr)
	return err != nil
}
