package cdc

// gearTable is the 256-entry rolling-hash table used by the gear hash
// (spec.md §4.5). Like the teacher's chunker.initGear, the table is built
// once from a fixed seed so it never varies across runs or platforms; unlike
// the teacher's table (which only populated 224 of 256 entries), this one is
// generated programmatically to guarantee full coverage of every byte value.
var gearTable = generateGearTable()

func generateGearTable() [256]uint64 {
	var table [256]uint64
	seed := uint64(0x123456789abcdef0)
	for i := range table {
		seed = seed*6364136223846793005 + 1442695040888963407
		table[i] = seed
	}
	return table
}
