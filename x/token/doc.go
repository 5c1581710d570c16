/*
Package token implements fungible assets.

A Mint registers an asset together with its decimal precision. Balances are
held in accounts, one per (owner, mint) pair, stored under the associated
account address derived from both. Every transfer is checked: the caller
declares the decimals it expects and the transfer fails with
ErrAssetMismatch if they differ from the registered mint, so a lookalike
asset with another scaling cannot be substituted.

Owners are authorized through an x.Authenticator. An owner may be a key, or
an address with no key at all that another extension authorizes in the
context of the transaction it executes.
*/
package token
