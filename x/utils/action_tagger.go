package utils

import (
	"github.com/iov-one/tokenswap"
)

// ActionKey is the tag key set by ActionTagger.
const ActionKey = "action"

// ActionTagger tags a successful delivery with action=<msg path>, so a
// client can subscribe to, for example, every escrow/take.
type ActionTagger struct{}

var _ tokenswap.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx, next tokenswap.Checker) (*tokenswap.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver does not call next for a tx without a message.
func (ActionTagger) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx, next tokenswap.Deliverer) (*tokenswap.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err == nil {
		res.Tags = append(res.Tags, tokenswap.Tag(ActionKey, []byte(msg.Path())))
	}
	return res, err
}
