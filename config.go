// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

const defaultCachesize = 10000

// configs stores the tunable parameters of a BDD. Since this package never
// resizes or garbage collects the node table (see DESIGN.md), we only keep
// the two options that still make sense once that machinery is gone: the
// preferred starting capacity of the node table and of the operator caches.
type configs struct {
	varnum    int // number of declared variables
	nodesize  int // initial capacity of the node table
	cachesize int // initial capacity of the operator caches
}

func makeconfigs(varnum int) *configs {
	return &configs{
		varnum:    varnum,
		nodesize:  2*varnum + 2,
		cachesize: defaultCachesize,
	}
}

// Option configures a BDD at construction time. See New.
type Option func(*configs)

// Nodesize sets a preferred initial capacity for the node table. The table
// still grows on demand; this only avoids repeated slice reallocation when
// the expected size of a computation is known ahead of time.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Cachesize sets the initial capacity of the operator caches (And, Or, Xor,
// Ite, Exist, Replace, ...). The default is 10 000 entries.
func Cachesize(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}
