/*
Package rent accounts for storage. Every address that holds state (a mint, a
token account, an escrow record) is backed by a storage deposit in the
native currency, paid by a payer when the state is allocated and refunded
to a chosen destination when it is released.

Native balances live in wallets, funded from the genesis file.
*/
package rent
