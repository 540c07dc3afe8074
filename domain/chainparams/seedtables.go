package chainparams

// mainDNSSeeds are the DNS seeds of the main network. No seed host has been
// published for the network yet.
var mainDNSSeeds []DNSSeed

// mainSeeds and testnetSeeds are the fixed seed tables of the main and test
// networks. Entries are generated from the seed node lists published by the
// network operators, one SeedSpec per address/port pair with IPv4 addresses
// in IPv4-mapped form. Nodes are added here once they commit to long-lived
// addresses.
var (
	mainSeeds    = []SeedSpec{}
	testnetSeeds = []SeedSpec{}
)
