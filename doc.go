/*
Package escrow implements an ICS20 fungible token transfer application that keeps a
per-channel escrow ledger. Native coins are held by the module account and cw20 tokens
by their contracts; the ledger records, for each channel and denomination, how much may
be released to inbound transfers and how much was ever sent out.
The wire format follows ICS 20
(https://github.com/cosmos/ibc/blob/main/spec/app/ics-020-fungible-token-transfer)
*/
package escrow
