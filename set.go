// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// AndAll returns the conjunction of a sequence of signals, True if the
// sequence is empty.
func (b *BDD) AndAll(s ...Signal) Signal {
	if len(s) == 0 {
		return True
	}
	res := s[0]
	for _, f := range s[1:] {
		res = b.And(res, f)
	}
	return res
}

// OrAll returns the disjunction of a sequence of signals, False if the
// sequence is empty.
func (b *BDD) OrAll(s ...Signal) Signal {
	if len(s) == 0 {
		return False
	}
	res := s[0]
	for _, f := range s[1:] {
		res = b.Or(res, f)
	}
	return res
}
