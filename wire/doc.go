/*
Package wire implements the serialized form of the chain objects karmad hashes:
proof-of-stake style transactions (which carry their own timestamp), block
headers, and blocks, together with the merkle tree construction over a block's
transactions.

All integers are encoded little-endian and all variable length fields are
prefixed with a bitcoin-style variable length integer. Hashes are double
SHA-256 over the serialized object, displayed in reversed byte order like any
bitcoin derived chain.
*/
package wire
