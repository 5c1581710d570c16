package escrow

import (
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/x/token"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMsgValidation(t *testing.T) {
	Convey("Escrow message validation", t, func() {
		maker := swaptest.NewCondition().Address()
		assetA := swaptest.NewCondition().Address()
		assetB := swaptest.NewCondition().Address()
		record, _, err := RecordAddress(maker, 7)
		So(err, ShouldBeNil)

		Convey("MakeMsg", func() {
			msg := MakeMsg{
				Maker:         maker,
				Seed:          7,
				DepositAmount: 1000,
				ReceiveAmount: 500,
				AssetA:        assetA,
				AssetB:        assetB,
				DecimalsA:     6,
			}
			Convey("Happy flow", func() {
				So(msg.Validate(), ShouldBeNil)
			})
			Convey("Seed zero is a valid seed", func() {
				msg.Seed = 0
				So(msg.Validate(), ShouldBeNil)
			})
			Convey("Zero deposit", func() {
				msg.DepositAmount = 0
				So(errors.ErrAmount.Is(msg.Validate()), ShouldBeTrue)
			})
			Convey("Zero receive amount", func() {
				msg.ReceiveAmount = 0
				So(errors.ErrAmount.Is(msg.Validate()), ShouldBeTrue)
			})
			Convey("Missing maker", func() {
				msg.Maker = nil
				So(errors.ErrEmpty.Is(msg.Validate()), ShouldBeTrue)
			})
			Convey("Too many decimals", func() {
				msg.DecimalsA = token.MaxDecimals + 1
				So(errors.ErrMsg.Is(msg.Validate()), ShouldBeTrue)
			})
			Convey("Serialization keeps every field", func() {
				raw, err := msg.Marshal()
				So(err, ShouldBeNil)
				var got MakeMsg
				So(got.Unmarshal(raw), ShouldBeNil)
				So(got, ShouldResemble, msg)
			})
		})

		Convey("TakeMsg", func() {
			msg := TakeMsg{
				Escrow:    record,
				Maker:     maker,
				AssetA:    assetA,
				AssetB:    assetB,
				DecimalsA: 6,
				DecimalsB: 9,
			}
			Convey("Happy flow", func() {
				So(msg.Validate(), ShouldBeNil)
			})
			Convey("Explicit taker", func() {
				msg.Taker = swaptest.NewCondition().Address()
				So(msg.Validate(), ShouldBeNil)
			})
			Convey("Malformed taker", func() {
				msg.Taker = maker[:8]
				So(errors.ErrInput.Is(msg.Validate()), ShouldBeTrue)
			})
			Convey("Missing asset", func() {
				msg.AssetB = nil
				So(errors.ErrEmpty.Is(msg.Validate()), ShouldBeTrue)
			})
			Convey("Too many decimals", func() {
				msg.DecimalsB = 19
				So(errors.ErrMsg.Is(msg.Validate()), ShouldBeTrue)
			})
			Convey("Decimals that do not fit a byte are rejected", func() {
				raw, err := msg.Marshal()
				So(err, ShouldBeNil)
				raw = append(raw, 0x30, 0x86, 0x02) // field 6, varint 262
				var got TakeMsg
				So(got.Unmarshal(raw), ShouldBeNil)
				So(got.DecimalsA, ShouldEqual, 262)
				So(errors.ErrMsg.Is(got.Validate()), ShouldBeTrue)
			})
		})

		Convey("CancelMsg", func() {
			msg := CancelMsg{Escrow: record}
			Convey("Happy flow", func() {
				So(msg.Validate(), ShouldBeNil)
			})
			Convey("Missing record", func() {
				msg.Escrow = nil
				So(errors.ErrEmpty.Is(msg.Validate()), ShouldBeTrue)
			})
		})
	})
}
