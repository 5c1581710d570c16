/*
Package escrow implements a two party token swap.

A maker opens an offer by depositing an amount of asset A into a custody
account and stating how much of asset B it wants in return. Any taker may
fulfill the offer: the whole custody balance goes to the taker and exactly
the requested amount of B goes from the taker to the maker, in one
transaction. Until then the maker may cancel and get the deposit back.

The record and its custody account have no private key. The record address
is derived from the maker and a seed, and the custody account is owned by
that address. While processing a take or cancel, this package grants the
record condition to the context of the running handler, which is the only
way to move funds out of custody.

Both the record and the custody account are charged a storage deposit that
is refunded to the maker when the offer is closed.
*/
package escrow
