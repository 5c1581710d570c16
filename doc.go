/*
Package tokenswap defines interfaces used throughout the app, such as:
storage, transactions, handlers, conditions and addresses. It also
contains helpers to work with context and abci.

The escrow extension lives in x/escrow, the asset transfer service it
depends on in x/token and the storage deposit accounting in x/rent.
*/
package tokenswap
